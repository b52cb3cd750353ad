package execshell

// CommandEventKind classifies a lifecycle notification for a repository query.
type CommandEventKind int

// Lifecycle notification kinds, in the order they can occur for one command.
const (
	// CommandEventStarted fires before the command process is launched.
	CommandEventStarted CommandEventKind = iota
	// CommandEventCompleted fires after the process ran to completion,
	// whatever its exit code; Result carries the outcome.
	CommandEventCompleted
	// CommandEventLaunchFailed fires when the process could not be started
	// at all; Failure carries the cause and Result is empty.
	CommandEventLaunchFailed
)

// CommandEvent is one lifecycle notification emitted while a repository
// query runs. Result is populated only for CommandEventCompleted and
// Failure only for CommandEventLaunchFailed.
type CommandEvent struct {
	Kind    CommandEventKind
	Command ShellCommand
	Result  ExecutionResult
	Failure error
}

// CommandEventObserver receives the lifecycle notifications of every command
// the executor runs.
type CommandEventObserver interface {
	ObserveCommand(event CommandEvent)
}

// noopCommandEventObserver discards all command events.
type noopCommandEventObserver struct{}

func (noopCommandEventObserver) ObserveCommand(CommandEvent) {}
