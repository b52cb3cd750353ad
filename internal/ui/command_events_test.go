package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/preflight-dev/gitgate/internal/execshell"
	"github.com/preflight-dev/gitgate/internal/ui"
)

func buildStatusCommand() execshell.ShellCommand {
	return execshell.ShellCommand{
		Name: execshell.CommandGit,
		Details: execshell.CommandDetails{
			Arguments:        []string{"status", "-uno", "--porcelain"},
			WorkingDirectory: "/workspace/project",
		},
	}
}

func TestConsoleCommandEventLoggerEvents(testInstance *testing.T) {
	testCases := []struct {
		name            string
		event           execshell.CommandEvent
		expectedLevel   zapcore.Level
		expectedMessage string
	}{
		{
			name:            "command_started",
			event:           execshell.CommandEvent{Kind: execshell.CommandEventStarted, Command: buildStatusCommand()},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: "Running git status -uno --porcelain (in /workspace/project)",
		},
		{
			name:            "command_completed",
			event:           execshell.CommandEvent{Kind: execshell.CommandEventCompleted, Command: buildStatusCommand(), Result: execshell.ExecutionResult{ExitCode: 0}},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: "Completed git status -uno --porcelain (in /workspace/project)",
		},
		{
			name:            "command_failed",
			event:           execshell.CommandEvent{Kind: execshell.CommandEventCompleted, Command: buildStatusCommand(), Result: execshell.ExecutionResult{ExitCode: 128, StandardError: "fatal: not a git repository\n"}},
			expectedLevel:   zapcore.WarnLevel,
			expectedMessage: "git status -uno --porcelain (in /workspace/project) failed with exit code 128: fatal: not a git repository",
		},
		{
			name:            "command_execution_failed",
			event:           execshell.CommandEvent{Kind: execshell.CommandEventLaunchFailed, Command: buildStatusCommand(), Failure: errors.New("executable file not found")},
			expectedLevel:   zapcore.ErrorLevel,
			expectedMessage: "git status -uno --porcelain (in /workspace/project) failed: executable file not found",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			observedCore, observedLogs := observer.New(zap.DebugLevel)
			eventLogger := ui.NewConsoleCommandEventLogger(zap.New(observedCore))

			eventLogger.ObserveCommand(testCase.event)

			entries := observedLogs.All()
			require.Len(subTest, entries, 1)
			require.Equal(subTest, testCase.expectedLevel, entries[0].Level)
			require.Equal(subTest, testCase.expectedMessage, entries[0].Message)
		})
	}
}

func TestNewConsoleCommandEventLoggerToleratesNilLogger(testInstance *testing.T) {
	eventLogger := ui.NewConsoleCommandEventLogger(nil)

	require.NotPanics(testInstance, func() {
		eventLogger.ObserveCommand(execshell.CommandEvent{Kind: execshell.CommandEventStarted, Command: buildStatusCommand()})
		eventLogger.ObserveCommand(execshell.CommandEvent{Kind: execshell.CommandEventCompleted, Command: buildStatusCommand()})
		eventLogger.ObserveCommand(execshell.CommandEvent{Kind: execshell.CommandEventLaunchFailed, Command: buildStatusCommand()})
	})
}
