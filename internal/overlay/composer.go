// Package overlay turns raw caption text, a channel handle, and styling
// parameters into the ordered drawtext command sequence that burns timed,
// highlighted, multi-line captions and a persistent watermark onto a video.
// Everything here is pure computation over immutable inputs; the ffmpeg
// invocation that consumes the result lives elsewhere.
package overlay

import "math"

// Composer builds filter graphs under one immutable Style. It holds no other
// state, so a single Composer is safe for concurrent use, and identical
// inputs always produce byte-identical graphs.
type Composer struct {
	style Style
}

// NewComposer returns a Composer rendering with the given style.
func NewComposer(style Style) *Composer {
	return &Composer{style: style}
}

// CaptionUnits runs one caption block through the full pipeline: sanitize,
// split into words, pick highlights over the whole block, wrap to the budget
// the frame width allows, then lay lines out around the role's anchor with
// the role's visibility window. Blank or whitespace-only text yields no
// units rather than an error.
func (c *Composer) CaptionUnits(block Caption, fontSize, frameWidth int) []DrawUnit {
	words := Words(Sanitize(block.Text))
	if len(words) == 0 {
		return nil
	}

	highlights := Highlights(len(words), block.Role)
	lines := Wrap(words, c.style.MaxCharsPerLine(frameWidth, fontSize))

	anchorY := c.style.SetupAnchorY
	if block.Role == RolePunchline {
		anchorY = c.style.PunchlineAnchorY
	}
	return c.Layout(lines, highlights, fontSize, anchorY, block.Window)
}

// WatermarkUnit renders the channel handle as a single unwrapped line at the
// watermark anchor, scaled down from the caption font size, always visible.
// An empty or fully sanitized-away handle yields no units.
func (c *Composer) WatermarkUnit(channel string, fontSize int) []DrawUnit {
	words := Words(Sanitize(channel))
	if len(words) == 0 {
		return nil
	}

	size := int(math.Round(float64(fontSize) * c.style.WatermarkScale))
	if size < 1 {
		size = 1
	}
	return c.Layout([]Line{Line(words)}, nil, size, c.style.WatermarkAnchorY, TimeWindow{})
}

// Assemble glow-expands the three unit groups and concatenates them in fixed
// order: setup block, punchline block, watermark. The order only matters
// where units overlap on screen, where later commands draw on top. The
// result is empty exactly when all three groups are.
func (c *Composer) Assemble(setup, punchline, watermark []DrawUnit) FilterGraph {
	graph := make(FilterGraph, 0, 4*(len(setup)+len(punchline)+len(watermark)))
	for _, group := range [][]DrawUnit{setup, punchline, watermark} {
		for _, u := range group {
			graph = append(graph, c.Expand(u)...)
		}
	}
	return graph
}

// BuildGraph is the single entry point the render pipeline uses: both
// caption blocks plus the watermark, assembled into one FilterGraph.
func (c *Composer) BuildGraph(setup, punchline, channel string, fontSize, frameWidth int) FilterGraph {
	return c.Assemble(
		c.CaptionUnits(c.Caption(setup, RoleSetup), fontSize, frameWidth),
		c.CaptionUnits(c.Caption(punchline, RolePunchline), fontSize, frameWidth),
		c.WatermarkUnit(channel, fontSize),
	)
}
