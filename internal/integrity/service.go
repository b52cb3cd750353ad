package integrity

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/preflight-dev/gitgate/internal/gitrepo"
)

const (
	defaultRootDirectoryConstant = "."
)

// Service coordinates the submodule integrity check.
type Service struct {
	inspector   RepositoryInspector
	errorWriter io.Writer
	exiter      ProcessExiter
}

// NewService constructs a Service using the provided dependencies. A nil
// errorWriter falls back to os.Stderr and a nil exiter to the OS-backed one.
func NewService(inspector RepositoryInspector, errorWriter io.Writer, exiter ProcessExiter) *Service {
	if errorWriter == nil {
		errorWriter = os.Stderr
	}
	return &Service{
		inspector:   inspector,
		errorWriter: errorWriter,
		exiter:      ResolveProcessExiter(exiter),
	}
}

// Run verifies the submodule integrity of the checkout at the configured
// root. Expected integrity violations become stderr diagnostics: severe ones
// (uninitialized or stale submodules) terminate the process with status 1
// through the exiter, minor ones (dirty worktrees, untracked files) warn and
// continue. Failures of the underlying git commands, other than the
// availability probe, propagate as errors instead of producing diagnostics.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	rootDirectory := options.RootDirectory
	if len(rootDirectory) == 0 {
		rootDirectory = defaultRootDirectoryConstant
	}

	if !service.inspector.IsRepository(rootDirectory) {
		return nil
	}

	if !service.inspector.GitAvailable(executionContext) {
		fmt.Fprintln(service.errorWriter, gitUnavailableWarningConstant)
		return nil
	}

	submodules, listError := service.inspector.ListSubmodules(executionContext, rootDirectory)
	if listError != nil {
		return listError
	}

	for _, submodule := range submodules {
		verdict, verdictError := service.classifySubmodule(executionContext, rootDirectory, submodule)
		if verdictError != nil {
			return verdictError
		}

		switch verdict {
		case SubmoduleVerdictNotInitialized:
			service.reportNotInitialized(rootDirectory, submodule.Name)
		case SubmoduleVerdictNotUpdated:
			service.reportNotUpdated(rootDirectory, submodule.Name)
		case SubmoduleVerdictDirty:
			fmt.Fprintf(service.errorWriter, dirtySubmoduleWarningTemplateConstant, submodule.Name)
		case SubmoduleVerdictHasExtraFiles:
			fmt.Fprintf(service.errorWriter, extraFilesWarningTemplateConstant, submodule.Name)
		}

		if verdict.IsFatal() {
			service.exiter.Exit(fatalExitCodeConstant)
			return nil
		}
	}

	return nil
}

// classifySubmodule inspects one submodule checkout. The untracked-file query
// only runs for submodules whose tracked worktree is clean, matching the
// severity ordering of the verdicts.
func (service *Service) classifySubmodule(executionContext context.Context, rootDirectory string, submodule gitrepo.SubmoduleStatus) (SubmoduleVerdict, error) {
	submodulePath := filepath.Join(rootDirectory, submodule.Name)

	if !service.inspector.IsRepository(submodulePath) {
		return SubmoduleVerdictNotInitialized, nil
	}

	headRevision, revisionError := service.inspector.HeadRevision(executionContext, submodulePath)
	if revisionError != nil {
		return SubmoduleVerdictClean, revisionError
	}
	if headRevision != submodule.ExpectedRevision {
		return SubmoduleVerdictNotUpdated, nil
	}

	dirty, dirtyError := service.inspector.IsDirty(executionContext, submodulePath)
	if dirtyError != nil {
		return SubmoduleVerdictClean, dirtyError
	}
	if dirty {
		return SubmoduleVerdictDirty, nil
	}

	extraFiles, extraFilesError := service.inspector.HasExtraFiles(executionContext, submodulePath)
	if extraFilesError != nil {
		return SubmoduleVerdictClean, extraFilesError
	}
	if extraFiles {
		return SubmoduleVerdictHasExtraFiles, nil
	}

	return SubmoduleVerdictClean, nil
}

func (service *Service) reportNotInitialized(rootDirectory string, submoduleName string) {
	fmt.Fprintf(service.errorWriter, submoduleNotInitializedTemplateConstant, submoduleName)
	fmt.Fprintln(service.errorWriter, remediationHeaderConstant)
	fmt.Fprintf(service.errorWriter, remediationChangeDirectoryTemplateConstant, gitrepo.QuotePath(rootDirectory))
	fmt.Fprintf(service.errorWriter, remediationInitializeTemplateConstant, submoduleName)
}

func (service *Service) reportNotUpdated(rootDirectory string, submoduleName string) {
	fmt.Fprintf(service.errorWriter, submoduleNotUpdatedTemplateConstant, submoduleName)
	fmt.Fprintln(service.errorWriter, remediationHeaderConstant)
	fmt.Fprintf(service.errorWriter, remediationChangeDirectoryTemplateConstant, gitrepo.QuotePath(rootDirectory))
	fmt.Fprintf(service.errorWriter, remediationUpdateTemplateConstant, submoduleName)
}
