// Package ui renders command lifecycle events for human consumption. It
// implements execshell.CommandEventObserver on top of a console-encoded zap
// logger so that every git invocation made during verification is visible
// when human-readable logging is enabled.
package ui
