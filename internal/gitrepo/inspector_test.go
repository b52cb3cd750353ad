package gitrepo_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/preflight-dev/gitgate/internal/execshell"
	"github.com/preflight-dev/gitgate/internal/gitrepo"
)

const (
	testRepositoryDirectoryConstant      = "/workspace/repo"
	testInspectorSubtestTemplateConstant = "%d_%s"
	testInspectorCaseDirtyConstant       = "tracked_changes_present"
	testInspectorCaseCleanConstant       = "tracked_changes_absent"
	testInspectorCaseWhitespaceConstant  = "whitespace_only_output_is_clean"
	testHeadRevisionOutputConstant       = "4a5b6c7d8e9f0a1b2c3d4e5f6a7b8c9d0e1f2a3b\n"
	testHeadRevisionTrimmedConstant      = "4a5b6c7d8e9f0a1b2c3d4e5f6a7b8c9d0e1f2a3b"
	testGitMetadataDirectoryNameConstant = ".git"
)

type scriptedShellExecutor struct {
	gitResults       map[string]execshell.ExecutionResult
	gitError         error
	shellResults     map[string]execshell.ExecutionResult
	shellError       error
	recordedScripts  []string
	recordedGitCalls [][]string
}

func (executor *scriptedShellExecutor) ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedGitCalls = append(executor.recordedGitCalls, details.Arguments)
	if executor.gitError != nil {
		return execshell.ExecutionResult{}, executor.gitError
	}
	return executor.gitResults[argumentsKey(details.Arguments)], nil
}

func (executor *scriptedShellExecutor) ExecuteShell(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	script := ""
	if len(details.Arguments) > 1 {
		script = details.Arguments[1]
	}
	executor.recordedScripts = append(executor.recordedScripts, script)
	if executor.shellError != nil {
		return execshell.ExecutionResult{}, executor.shellError
	}
	return executor.shellResults[script], nil
}

func argumentsKey(arguments []string) string {
	key := ""
	for _, argument := range arguments {
		if len(key) > 0 {
			key += " "
		}
		key += argument
	}
	return key
}

func TestNewRepositoryInspectorRequiresExecutor(testInstance *testing.T) {
	inspector, creationError := gitrepo.NewRepositoryInspector(nil, nil)
	require.ErrorIs(testInstance, creationError, gitrepo.ErrExecutorNotConfigured)
	require.Nil(testInstance, inspector)
}

func TestIsRepositoryDetectsMetadataMarker(testInstance *testing.T) {
	inspector, creationError := gitrepo.NewRepositoryInspector(&scriptedShellExecutor{}, nil)
	require.NoError(testInstance, creationError)

	repositoryDirectory := testInstance.TempDir()
	require.False(testInstance, inspector.IsRepository(repositoryDirectory))

	require.NoError(testInstance, os.Mkdir(filepath.Join(repositoryDirectory, testGitMetadataDirectoryNameConstant), 0o755))
	require.True(testInstance, inspector.IsRepository(repositoryDirectory))

	missingDirectory := filepath.Join(repositoryDirectory, "does-not-exist")
	require.False(testInstance, inspector.IsRepository(missingDirectory))
}

func TestIsRepositoryAcceptsGitdirLinkFile(testInstance *testing.T) {
	inspector, creationError := gitrepo.NewRepositoryInspector(&scriptedShellExecutor{}, nil)
	require.NoError(testInstance, creationError)

	repositoryDirectory := testInstance.TempDir()
	gitdirLinkPath := filepath.Join(repositoryDirectory, testGitMetadataDirectoryNameConstant)
	require.NoError(testInstance, os.WriteFile(gitdirLinkPath, []byte("gitdir: ../.git/modules/sub\n"), 0o644))

	require.True(testInstance, inspector.IsRepository(repositoryDirectory))
}

func TestGitAvailableProbesConfiguration(testInstance *testing.T) {
	availableExecutor := &scriptedShellExecutor{gitResults: map[string]execshell.ExecutionResult{}}
	inspector, creationError := gitrepo.NewRepositoryInspector(availableExecutor, nil)
	require.NoError(testInstance, creationError)
	require.True(testInstance, inspector.GitAvailable(context.Background()))
	require.Equal(testInstance, [][]string{{"config", "-l"}}, availableExecutor.recordedGitCalls)

	failingExecutor := &scriptedShellExecutor{
		gitError: execshell.CommandFailedError{Result: execshell.ExecutionResult{ExitCode: 1}},
	}
	inspector, creationError = gitrepo.NewRepositoryInspector(failingExecutor, nil)
	require.NoError(testInstance, creationError)
	require.False(testInstance, inspector.GitAvailable(context.Background()))
}

func TestHeadRevisionTrimsOutputAndQuotesDirectory(testInstance *testing.T) {
	expectedScript := "cd '/workspace/my repo'; git rev-parse HEAD"
	executor := &scriptedShellExecutor{
		shellResults: map[string]execshell.ExecutionResult{
			expectedScript: {StandardOutput: testHeadRevisionOutputConstant},
		},
	}

	inspector, creationError := gitrepo.NewRepositoryInspector(executor, nil)
	require.NoError(testInstance, creationError)

	headRevision, revisionError := inspector.HeadRevision(context.Background(), "/workspace/my repo")
	require.NoError(testInstance, revisionError)
	require.Equal(testInstance, testHeadRevisionTrimmedConstant, headRevision)
	require.Equal(testInstance, []string{expectedScript}, executor.recordedScripts)
}

func TestListSubmodulesParsesStatusOutput(testInstance *testing.T) {
	statusScript := "cd /workspace/repo; git submodule status"
	executor := &scriptedShellExecutor{
		shellResults: map[string]execshell.ExecutionResult{
			statusScript: {StandardOutput: fmt.Sprintf("+%s vendor/typeshed (v1.0)\n", testHeadRevisionTrimmedConstant)},
		},
	}

	inspector, creationError := gitrepo.NewRepositoryInspector(executor, nil)
	require.NoError(testInstance, creationError)

	submodules, listError := inspector.ListSubmodules(context.Background(), testRepositoryDirectoryConstant)
	require.NoError(testInstance, listError)
	require.Equal(testInstance, []gitrepo.SubmoduleStatus{
		{StateMarker: gitrepo.SubmoduleStateMismatch, ExpectedRevision: testHeadRevisionTrimmedConstant, Name: "vendor/typeshed"},
	}, submodules)
}

func TestCleanlinessQueriesInterpretTrimmedOutput(testInstance *testing.T) {
	testCases := []struct {
		name           string
		scriptOutput   string
		expectedResult bool
	}{
		{
			name:           testInspectorCaseDirtyConstant,
			scriptOutput:   " M cmd/main.go\n",
			expectedResult: true,
		},
		{
			name:           testInspectorCaseCleanConstant,
			scriptOutput:   "",
			expectedResult: false,
		},
		{
			name:           testInspectorCaseWhitespaceConstant,
			scriptOutput:   "\n  \n",
			expectedResult: false,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testInspectorSubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			dirtyScript := "cd /workspace/repo; git status -uno --porcelain"
			extraScript := "cd /workspace/repo; git clean --dry-run -d"
			executor := &scriptedShellExecutor{
				shellResults: map[string]execshell.ExecutionResult{
					dirtyScript: {StandardOutput: testCase.scriptOutput},
					extraScript: {StandardOutput: testCase.scriptOutput},
				},
			}

			inspector, creationError := gitrepo.NewRepositoryInspector(executor, nil)
			require.NoError(testInstance, creationError)

			dirty, dirtyError := inspector.IsDirty(context.Background(), testRepositoryDirectoryConstant)
			require.NoError(testInstance, dirtyError)
			require.Equal(testInstance, testCase.expectedResult, dirty)

			extraFiles, extraError := inspector.HasExtraFiles(context.Background(), testRepositoryDirectoryConstant)
			require.NoError(testInstance, extraError)
			require.Equal(testInstance, testCase.expectedResult, extraFiles)
		})
	}
}

func TestRunInDirectoryPropagatesCommandFailures(testInstance *testing.T) {
	executor := &scriptedShellExecutor{
		shellError: execshell.CommandFailedError{Result: execshell.ExecutionResult{ExitCode: 128}},
	}

	inspector, creationError := gitrepo.NewRepositoryInspector(executor, nil)
	require.NoError(testInstance, creationError)

	_, runError := inspector.RunInDirectory(context.Background(), testRepositoryDirectoryConstant, "git rev-parse HEAD")
	require.Error(testInstance, runError)
	require.IsType(testInstance, execshell.CommandFailedError{}, runError)
}
