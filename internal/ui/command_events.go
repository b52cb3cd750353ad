package ui

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/preflight-dev/gitgate/internal/execshell"
)

const (
	commandStartedTemplateConstant          = "Running %s"
	commandCompletedTemplateConstant        = "Completed %s"
	commandFailedTemplateConstant           = "%s failed with exit code %d"
	commandExecutionFailureTemplateConstant = "%s failed: %s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	standardErrorSuffixTemplateConstant     = ": %s"
	argumentsSeparatorConstant              = " "
	unknownFailureMessageConstant           = "unknown error"
)

// CommandEventFormatter builds human-readable messages for command lifecycle events.
type CommandEventFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandEventFormatter) BuildStartedMessage(command execshell.ShellCommand) string {
	return fmt.Sprintf(commandStartedTemplateConstant, formatter.describeCommand(command))
}

// BuildSuccessMessage formats the message describing a command that exited with status zero.
func (formatter CommandEventFormatter) BuildSuccessMessage(command execshell.ShellCommand) string {
	return fmt.Sprintf(commandCompletedTemplateConstant, formatter.describeCommand(command))
}

// BuildFailureMessage formats the message describing a command that exited non-zero.
func (formatter CommandEventFormatter) BuildFailureMessage(command execshell.ShellCommand, result execshell.ExecutionResult) string {
	message := fmt.Sprintf(commandFailedTemplateConstant, formatter.describeCommand(command), result.ExitCode)
	trimmedStandardError := strings.TrimSpace(result.StandardError)
	if len(trimmedStandardError) > 0 {
		message += fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
	}
	return message
}

// BuildExecutionFailureMessage formats the message describing a command that never ran.
func (formatter CommandEventFormatter) BuildExecutionFailureMessage(command execshell.ShellCommand, failure error) string {
	failureMessage := unknownFailureMessageConstant
	if failure != nil {
		failureMessage = failure.Error()
	}
	return fmt.Sprintf(commandExecutionFailureTemplateConstant, formatter.describeCommand(command), failureMessage)
}

func (formatter CommandEventFormatter) describeCommand(command execshell.ShellCommand) string {
	parts := []string{string(command.Name)}
	if len(command.Details.Arguments) > 0 {
		parts = append(parts, strings.Join(command.Details.Arguments, argumentsSeparatorConstant))
	}
	label := strings.Join(parts, argumentsSeparatorConstant)

	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) > 0 {
		label += fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
	}
	return label
}

// ConsoleCommandEventLogger renders command lifecycle events through a zap logger.
type ConsoleCommandEventLogger struct {
	logger    *zap.Logger
	formatter CommandEventFormatter
}

// NewConsoleCommandEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleCommandEventLogger(logger *zap.Logger) *ConsoleCommandEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleCommandEventLogger{logger: logger, formatter: CommandEventFormatter{}}
}

// ObserveCommand implements execshell.CommandEventObserver. Started and
// successfully completed commands log at info level, non-zero exits at
// warning level, and launch failures at error level.
func (eventLogger *ConsoleCommandEventLogger) ObserveCommand(event execshell.CommandEvent) {
	if eventLogger == nil {
		return
	}

	switch event.Kind {
	case execshell.CommandEventStarted:
		eventLogger.logger.Info(eventLogger.formatter.BuildStartedMessage(event.Command))
	case execshell.CommandEventCompleted:
		if event.Result.ExitCode == 0 {
			eventLogger.logger.Info(eventLogger.formatter.BuildSuccessMessage(event.Command))
			return
		}
		eventLogger.logger.Warn(eventLogger.formatter.BuildFailureMessage(event.Command, event.Result))
	case execshell.CommandEventLaunchFailed:
		eventLogger.logger.Error(eventLogger.formatter.BuildExecutionFailureMessage(event.Command, event.Failure))
	}
}
