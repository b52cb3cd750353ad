package integrity

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/preflight-dev/gitgate/internal/execshell"
	"github.com/preflight-dev/gitgate/internal/gitrepo"
)

// RepositoryInspector exposes the read-only git queries used by the check.
type RepositoryInspector interface {
	IsRepository(directory string) bool
	GitAvailable(executionContext context.Context) bool
	ListSubmodules(executionContext context.Context, directory string) ([]gitrepo.SubmoduleStatus, error)
	HeadRevision(executionContext context.Context, directory string) (string, error)
	IsDirty(executionContext context.Context, directory string) (bool, error)
	HasExtraFiles(executionContext context.Context, directory string) (bool, error)
}

// ProcessExiter terminates the current process. It is the single seam through
// which a fatal integrity verdict reaches the operating system.
type ProcessExiter interface {
	Exit(code int)
}

// OSProcessExiter implements ProcessExiter using os.Exit.
type OSProcessExiter struct{}

// Exit terminates the process with the provided status code.
func (OSProcessExiter) Exit(code int) {
	os.Exit(code)
}

// ResolveRepositoryInspector returns the provided inspector or constructs a
// shell-backed default.
func ResolveRepositoryInspector(existing RepositoryInspector, logger *zap.Logger, observer execshell.CommandEventObserver) (RepositoryInspector, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, executorCreationError := execshell.NewShellExecutor(logger, commandRunner, observer)
	if executorCreationError != nil {
		return nil, executorCreationError
	}

	inspector, inspectorCreationError := gitrepo.NewRepositoryInspector(shellExecutor, nil)
	if inspectorCreationError != nil {
		return nil, inspectorCreationError
	}

	return inspector, nil
}

// ResolveProcessExiter returns the provided exiter or the OS-backed default.
func ResolveProcessExiter(existing ProcessExiter) ProcessExiter {
	if existing != nil {
		return existing
	}
	return OSProcessExiter{}
}
