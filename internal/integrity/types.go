package integrity

// CommandOptions captures the configurable parameters for the verify command.
type CommandOptions struct {
	// RootDirectory is the checkout whose submodules are verified.
	RootDirectory string
}

// SubmoduleVerdict classifies the outcome of checking one submodule.
type SubmoduleVerdict int

// Possible verdicts, ordered from silent to fatal.
const (
	SubmoduleVerdictClean SubmoduleVerdict = iota
	SubmoduleVerdictHasExtraFiles
	SubmoduleVerdictDirty
	SubmoduleVerdictNotUpdated
	SubmoduleVerdictNotInitialized
)

// IsFatal reports whether the verdict aborts the whole check.
func (verdict SubmoduleVerdict) IsFatal() bool {
	return verdict == SubmoduleVerdictNotInitialized || verdict == SubmoduleVerdictNotUpdated
}
