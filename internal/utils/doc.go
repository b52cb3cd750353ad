// Package utils houses shared CLI plumbing: the zap logger factory, the
// viper-backed configuration loader, context helpers, and writer wrappers
// used by the command layer.
package utils
