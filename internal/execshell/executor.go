package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	commandFailedErrorTemplateConstant    = "%s exited with code %d%s"
	commandExecutionErrorTemplateConstant = "%s could not be executed: %s"
	commandLabelSeparatorConstant         = " "
	standardErrorDetailTemplateConstant   = ": %s"
	loggerNotConfiguredMessageConstant    = "logger not configured"
	runnerNotConfiguredMessageConstant    = "command runner not configured"
)

// CommandName identifies an executable invoked through the shell executor.
type CommandName string

// Supported executables.
const (
	CommandGit   CommandName = "git"
	CommandShell CommandName = "sh"
)

// CommandDetails describes a single invocation of an external tool. The
// repository queries gitgate runs are argument lists against a working
// directory; they never feed standard input or alter the environment.
type CommandDetails struct {
	Arguments        []string
	WorkingDirectory string
}

// ShellCommand couples a CommandName with the invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the observable outcome of a completed command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandRunner represents the ability to run shell commands.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// Sentinel errors reported by NewShellExecutor when dependencies are missing.
var (
	ErrLoggerNotConfigured        = errors.New(loggerNotConfiguredMessageConstant)
	ErrCommandRunnerNotConfigured = errors.New(runnerNotConfiguredMessageConstant)
)

// CommandFailedError reports a command that ran to completion with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failed command including its exit code and captured stderr.
func (failedError CommandFailedError) Error() string {
	return fmt.Sprintf(
		commandFailedErrorTemplateConstant,
		describeCommand(failedError.Command),
		failedError.Result.ExitCode,
		formatStandardErrorDetail(failedError.Result.StandardError),
	)
}

// CommandExecutionError reports a command that could not be launched at all.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the launch failure.
func (executionError CommandExecutionError) Error() string {
	return fmt.Sprintf(
		commandExecutionErrorTemplateConstant,
		describeCommand(executionError.Command),
		executionError.Cause,
	)
}

// Unwrap exposes the underlying launch failure.
func (executionError CommandExecutionError) Unwrap() error {
	return executionError.Cause
}

// ShellExecutor coordinates command execution, logging, and lifecycle observation.
type ShellExecutor struct {
	logger        *zap.Logger
	commandRunner CommandRunner
	observer      CommandEventObserver
	formatter     CommandMessageFormatter
}

// NewShellExecutor validates the dependencies and constructs a ShellExecutor.
func NewShellExecutor(logger *zap.Logger, commandRunner CommandRunner, observers ...CommandEventObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if commandRunner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	var observer CommandEventObserver = noopCommandEventObserver{}
	for _, candidateObserver := range observers {
		if candidateObserver != nil {
			observer = candidateObserver
			break
		}
	}

	return &ShellExecutor{
		logger:        logger,
		commandRunner: commandRunner,
		observer:      observer,
		formatter:     CommandMessageFormatter{},
	}, nil
}

// ExecuteGit runs the git executable with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

// ExecuteShell runs the POSIX shell with the provided details.
func (executor *ShellExecutor) ExecuteShell(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandShell, Details: details})
}

// Execute runs the supplied command, logging its lifecycle and classifying failures.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logger.Debug(executor.formatter.BuildStartedMessage(command))
	executor.observer.ObserveCommand(CommandEvent{Kind: CommandEventStarted, Command: command})

	executionResult, runError := executor.commandRunner.Run(executionContext, command)
	if runError != nil {
		executor.logger.Error(executor.formatter.BuildExecutionFailureMessage(command, runError))
		executor.observer.ObserveCommand(CommandEvent{Kind: CommandEventLaunchFailed, Command: command, Failure: runError})
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	executor.observer.ObserveCommand(CommandEvent{Kind: CommandEventCompleted, Command: command, Result: executionResult})

	if executionResult.ExitCode != 0 {
		executor.logger.Warn(executor.formatter.BuildFailureMessage(command, executionResult))
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Debug(executor.formatter.BuildSuccessMessage(command))
	return executionResult, nil
}

func describeCommand(command ShellCommand) string {
	commandParts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		commandParts = append(commandParts, command.Details.Arguments...)
	}
	return strings.Join(commandParts, commandLabelSeparatorConstant)
}

func formatStandardErrorDetail(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return ""
	}
	return fmt.Sprintf(standardErrorDetailTemplateConstant, trimmedStandardError)
}
