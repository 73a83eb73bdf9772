package overlay

import (
	"strings"

	"github.com/samber/lo"
)

// FilterGraph is the ordered command sequence handed to the backend.
type FilterGraph []DrawText

// Empty reports whether the graph carries no commands at all, letting the
// caller skip the backend's text stage.
func (g FilterGraph) Empty() bool {
	return len(g) == 0
}

// String renders the graph as a comma-joined drawtext chain, the form a
// filtergraph string expects.
func (g FilterGraph) String() string {
	return strings.Join(lo.Map(g, func(d DrawText, _ int) string {
		return "drawtext=" + d.String()
	}), ",")
}
