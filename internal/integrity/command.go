package integrity

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/preflight-dev/gitgate/internal/execshell"
	"github.com/preflight-dev/gitgate/internal/ui"
	"github.com/preflight-dev/gitgate/internal/utils"
)

const (
	commandUseConstant                    = "verify [root]"
	commandShortDescriptionConstant       = "Verify that submodules are initialized, updated, and clean"
	commandLongDescriptionConstant        = "verify inspects every registered submodule of a checkout and reports submodules that are missing, stale, dirty, or carrying untracked files."
	commandExecutionErrorTemplateConstant = "integrity verification failed: %w"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the Cobra command for submodule verification.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	Inspector                    RepositoryInspector
	Exiter                       ProcessExiter
	CommandEventsObserver        execshell.CommandEventObserver
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the verify command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	rootDirectory := configuration.Root
	if len(arguments) > 0 {
		trimmedArgument := strings.TrimSpace(arguments[0])
		if len(trimmedArgument) > 0 {
			rootDirectory = trimmedArgument
		}
	}

	logger := builder.resolveLogger()
	inspector, inspectorError := ResolveRepositoryInspector(builder.Inspector, logger, builder.resolveCommandEventsObserver(logger))
	if inspectorError != nil {
		return inspectorError
	}

	service := NewService(inspector, utils.NewFlushingWriter(command.ErrOrStderr()), builder.Exiter)

	runError := service.Run(command.Context(), CommandOptions{RootDirectory: rootDirectory})
	if runError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, runError)
	}

	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}

	provided := builder.ConfigurationProvider()
	return provided.sanitize()
}

func (builder *CommandBuilder) resolveCommandEventsObserver(logger *zap.Logger) execshell.CommandEventObserver {
	if builder.CommandEventsObserver != nil {
		return builder.CommandEventsObserver
	}
	if builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
		return ui.NewConsoleCommandEventLogger(logger)
	}
	return nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
