package gitrepo

import (
	"strings"
)

// Submodule state markers emitted by the first byte of each
// `git submodule status` output line.
const (
	SubmoduleStateCurrent        byte = ' '
	SubmoduleStateNotInitialized byte = '-'
	SubmoduleStateMismatch       byte = '+'
	SubmoduleStateMergeConflict  byte = 'U'
)

// SubmoduleStatus captures one line of `git submodule status` output.
type SubmoduleStatus struct {
	// StateMarker is the leading status byte of the line.
	StateMarker byte
	// ExpectedRevision is the revision the parent checkout has recorded.
	ExpectedRevision string
	// Name is the submodule path as tracked by the parent.
	Name string
}

// ParseSubmoduleStatusOutput parses the full output of `git submodule status`
// into the listed submodules, preserving listing order. Blank lines and lines
// too short to carry a revision and name are skipped. Fields past the name
// (such as the describe output in parentheses) are ignored.
func ParseSubmoduleStatusOutput(output string) []SubmoduleStatus {
	var submodules []SubmoduleStatus
	for _, line := range strings.Split(output, "\n") {
		submodule, parsed := parseSubmoduleStatusLine(line)
		if !parsed {
			continue
		}
		submodules = append(submodules, submodule)
	}
	return submodules
}

func parseSubmoduleStatusLine(line string) (SubmoduleStatus, bool) {
	if len(line) < 2 {
		return SubmoduleStatus{}, false
	}

	stateMarker := line[0]
	fields := strings.Fields(line[1:])
	if len(fields) < 2 {
		return SubmoduleStatus{}, false
	}

	return SubmoduleStatus{
		StateMarker:      stateMarker,
		ExpectedRevision: fields[0],
		Name:             fields[1],
	}, true
}
