package integrity

import "strings"

const (
	verifyConfigurationKeyConstant = "verify"
	configurationRootKeyConstant   = "root"
)

// CommandConfiguration captures configuration values for the verify command.
type CommandConfiguration struct {
	Root string `mapstructure:"root"`
}

// DefaultCommandConfiguration returns baseline configuration values for the verify command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Root: defaultRootDirectoryConstant,
	}
}

// DefaultConfigurationValues produces Viper defaults for the verify command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + verifyConfigurationKeyConstant + "." + configurationRootKeyConstant: defaults.Root,
	}
}

// sanitize normalizes verify configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Root = strings.TrimSpace(configuration.Root)
	if len(sanitized.Root) == 0 {
		sanitized.Root = defaultRootDirectoryConstant
	}
	return sanitized
}
