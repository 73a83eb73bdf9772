package overlay

import (
	"fmt"
	"strconv"
)

// Role identifies which of the two caption slots a block fills. The setup
// block is shown from the start of the video, the punchline block after the
// beat that follows it.
type Role int

const (
	RoleSetup Role = iota
	RolePunchline
)

// TimeWindow bounds when a draw command is visible. The zero value means
// always visible; the constructors set exactly one bound.
type TimeWindow struct {
	start    float64
	end      float64
	hasStart bool
	hasEnd   bool
}

// VisibleFrom returns a window open on the right: visible while t >= sec.
func VisibleFrom(sec float64) TimeWindow {
	return TimeWindow{start: sec, hasStart: true}
}

// VisibleUntil returns a window open on the left: visible while t < sec.
func VisibleUntil(sec float64) TimeWindow {
	return TimeWindow{end: sec, hasEnd: true}
}

// Enable renders the window as a drawtext enable expression. An unbounded
// window returns the empty string, meaning no enable option at all.
func (w TimeWindow) Enable() string {
	switch {
	case w.hasEnd:
		return fmt.Sprintf("lt(t,%s)", fmtSeconds(w.end))
	case w.hasStart:
		return fmt.Sprintf("gte(t,%s)", fmtSeconds(w.start))
	default:
		return ""
	}
}

func fmtSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', -1, 64)
}

// Caption is one block of raw request text together with its slot and
// visibility window. Blocks are built fresh per render and never reused.
type Caption struct {
	Text   string
	Role   Role
	Window TimeWindow
}

// Caption pairs request text with the window its role gets under this
// composer's style.
func (c *Composer) Caption(text string, role Role) Caption {
	window := VisibleUntil(c.style.SetupHideAt)
	if role == RolePunchline {
		window = VisibleFrom(c.style.PunchlineShowAt)
	}
	return Caption{Text: text, Role: role, Window: window}
}
