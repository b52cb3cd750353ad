package gitrepo

import (
	"fmt"

	"al.essio.dev/pkg/shellescape"
)

const (
	directoryScriptTemplateConstant = "cd %s; %s"
)

// BuildDirectoryScript composes a shell script that changes into the provided
// directory and runs the command there. The directory is quoted so paths
// containing spaces, quotes, or other shell metacharacters execute correctly.
func BuildDirectoryScript(directory string, command string) string {
	return fmt.Sprintf(directoryScriptTemplateConstant, shellescape.Quote(directory), command)
}

// QuotePath returns the provided path quoted for safe interpolation into a
// POSIX shell command line.
func QuotePath(path string) string {
	return shellescape.Quote(path)
}
