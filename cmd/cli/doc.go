// Package cli constructs the gitgate command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and structured logging
// primitives around the submodule verification command.
package cli
