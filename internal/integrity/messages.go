package integrity

// Diagnostic wording is a compatibility contract with the build tooling that
// consumes it; the templates below must not be reworded casually.
const (
	gitUnavailableWarningConstant = "Warning: Couldn't check git integrity. git executable not in path."

	dirtySubmoduleWarningTemplateConstant = "Warning: git module '%s' has uncommitted changes.\n"
	extraFilesWarningTemplateConstant     = "Warning: git module '%s' has untracked files.\n"

	submoduleNotInitializedTemplateConstant    = "Submodule '%s' not initialized.\n"
	submoduleNotUpdatedTemplateConstant        = "Submodule '%s' not updated.\n"
	remediationHeaderConstant                  = "Please run:"
	remediationChangeDirectoryTemplateConstant = "  cd %s\n"
	remediationInitializeTemplateConstant      = "  git submodule init %s\n"
	remediationUpdateTemplateConstant          = "  git submodule update %s\n"
)

const (
	fatalExitCodeConstant = 1
)
