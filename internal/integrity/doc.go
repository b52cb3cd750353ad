// Package integrity implements the pre-flight submodule verification used by
// the gitgate CLI.
//
// It exposes CommandBuilder for wiring the verify Cobra command and Service
// for driving the check programmatically. The check is read-only: it
// enumerates the submodules recorded by a checkout, compares their actual
// state against the recorded one, warns about dirty or untracked-file states,
// and aborts the process on the first submodule that is missing or stale.
package integrity
