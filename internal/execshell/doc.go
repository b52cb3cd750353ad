// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner
// for default process execution, and defines the abstractions gitgate uses to
// run git and shell scripts in a testable manner. Commands that exit with a
// non-zero status surface as CommandFailedError, while commands that could
// not be launched at all surface as CommandExecutionError; callers that need
// to tell an unavailable tool apart from a broken invocation rely on this
// distinction.
package execshell
