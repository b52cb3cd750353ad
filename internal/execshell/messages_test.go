package execshell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessageForSubmoduleListingIncludesDirectory(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"submodule", "status"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Listing submodules in /workspace/repo", message)
}

func TestBuildFailureMessageForAvailabilityProbeIncludesExitCode(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments: []string{"config", "-l"},
		},
	}
	result := ExecutionResult{ExitCode: 128, StandardError: "not a git repository"}

	message := formatter.BuildFailureMessage(command, result)

	require.Equal(t, "git availability probe failed (exit code 128: not a git repository)", message)
}

func TestBuildStartedMessageForShellScriptQuotesScript(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandShell,
		Details: CommandDetails{
			Arguments: []string{"-c", "cd /tmp; git rev-parse HEAD"},
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, `Running shell script "cd /tmp; git rev-parse HEAD"`, message)
}

func TestBuildStartedMessageForUnknownSubcommandFallsBackToGenericLabel(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"gc"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	message := formatter.BuildStartedMessage(command)

	require.Equal(t, "Running git gc (in /workspace/repo)", message)
}
