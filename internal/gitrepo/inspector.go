package gitrepo

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/preflight-dev/gitgate/internal/execshell"
)

const (
	gitMetadataDirectoryNameConstant     = ".git"
	gitAvailabilityProbeCommandConstant  = "config"
	gitAvailabilityProbeListFlagConstant = "-l"
	gitSubmoduleStatusCommandConstant    = "git submodule status"
	gitHeadRevisionCommandConstant       = "git rev-parse HEAD"
	gitTrackedStatusCommandConstant      = "git status -uno --porcelain"
	gitUntrackedListingCommandConstant   = "git clean --dry-run -d"
	shellScriptFlagConstant              = "-c"
	executorNotConfiguredMessageConstant = "shell executor not configured"
)

// ShellCommandExecutor exposes the subset of shell execution used by the inspector.
type ShellCommandExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
	ExecuteShell(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// FileSystem exposes the filesystem operations required by the inspector.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
}

// OSFileSystem implements FileSystem using the operating system facilities.
type OSFileSystem struct{}

// Stat reports file information via os.Stat.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ErrExecutorNotConfigured is returned when an inspector is constructed without an executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// RepositoryInspector answers read-only questions about git checkouts by
// shelling out to the git CLI.
type RepositoryInspector struct {
	executor   ShellCommandExecutor
	fileSystem FileSystem
}

// NewRepositoryInspector constructs a RepositoryInspector around the provided executor.
func NewRepositoryInspector(executor ShellCommandExecutor, fileSystem FileSystem) (*RepositoryInspector, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	if fileSystem == nil {
		fileSystem = OSFileSystem{}
	}
	return &RepositoryInspector{executor: executor, fileSystem: fileSystem}, nil
}

// IsRepository reports whether the directory carries the git metadata marker.
// The marker may be a directory or, for submodule checkouts, a gitdir link
// file; either counts. Missing directories simply yield false.
func (inspector *RepositoryInspector) IsRepository(directory string) bool {
	_, statError := inspector.fileSystem.Stat(filepath.Join(directory, gitMetadataDirectoryNameConstant))
	return statError == nil
}

// GitAvailable reports whether the git executable can be run at all. The
// probe runs `git config -l`; any failure, including a missing executable or
// a non-repository working directory, yields false without distinction.
func (inspector *RepositoryInspector) GitAvailable(executionContext context.Context) bool {
	probeDetails := execshell.CommandDetails{
		Arguments: []string{gitAvailabilityProbeCommandConstant, gitAvailabilityProbeListFlagConstant},
	}
	_, probeError := inspector.executor.ExecuteGit(executionContext, probeDetails)
	return probeError == nil
}

// RunInDirectory executes the command inside the directory through the POSIX
// shell, quoting the directory so unusual paths execute correctly. Non-zero
// exits and launch failures propagate from the executor unchanged.
func (inspector *RepositoryInspector) RunInDirectory(executionContext context.Context, directory string, command string) (string, error) {
	scriptDetails := execshell.CommandDetails{
		Arguments: []string{shellScriptFlagConstant, BuildDirectoryScript(directory, command)},
	}
	executionResult, executionError := inspector.executor.ExecuteShell(executionContext, scriptDetails)
	if executionError != nil {
		return "", executionError
	}
	return executionResult.StandardOutput, nil
}

// ListSubmodules enumerates the submodules recorded by the checkout at the
// directory, in the order git reports them.
func (inspector *RepositoryInspector) ListSubmodules(executionContext context.Context, directory string) ([]SubmoduleStatus, error) {
	statusOutput, statusError := inspector.RunInDirectory(executionContext, directory, gitSubmoduleStatusCommandConstant)
	if statusError != nil {
		return nil, statusError
	}
	return ParseSubmoduleStatusOutput(statusOutput), nil
}

// HeadRevision returns the trimmed revision identifier of the checkout head.
func (inspector *RepositoryInspector) HeadRevision(executionContext context.Context, directory string) (string, error) {
	revisionOutput, revisionError := inspector.RunInDirectory(executionContext, directory, gitHeadRevisionCommandConstant)
	if revisionError != nil {
		return "", revisionError
	}
	return strings.TrimSpace(revisionOutput), nil
}

// IsDirty reports whether the checkout has uncommitted changes to tracked
// files. Untracked files do not count.
func (inspector *RepositoryInspector) IsDirty(executionContext context.Context, directory string) (bool, error) {
	statusOutput, statusError := inspector.RunInDirectory(executionContext, directory, gitTrackedStatusCommandConstant)
	if statusError != nil {
		return false, statusError
	}
	return len(strings.TrimSpace(statusOutput)) > 0, nil
}

// HasExtraFiles reports whether the checkout contains untracked files, using
// a dry-run clean listing so nothing is ever removed.
func (inspector *RepositoryInspector) HasExtraFiles(executionContext context.Context, directory string) (bool, error) {
	cleanOutput, cleanError := inspector.RunInDirectory(executionContext, directory, gitUntrackedListingCommandConstant)
	if cleanError != nil {
		return false, cleanError
	}
	return len(strings.TrimSpace(cleanOutput)) > 0, nil
}
