package overlay

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// DrawUnit is one renderable text span: a whole line when nothing in it is
// highlighted, or a single word when its line carries a highlight and colors
// must vary per word. X and Y are backend position expressions resolved at
// draw time.
type DrawUnit struct {
	Text        string
	X           string
	Y           string
	FontSize    int
	Color       string
	Highlighted bool
	Window      TimeWindow
}

// Layout positions a block of wrapped lines. The block is vertically
// centered around anchorY (an offset from the frame middle): each line
// advances by fontSize x LineHeightScale and the whole block is shifted up
// by half its height.
//
// A line without highlighted words becomes one unit centered with the
// backend's own text measurement. A line with a highlight is emitted word by
// word: the full line width is estimated from CharWidthRatio, centered on
// the frame, and each word is offset by the characters preceding it. The
// even spacing this produces assumes fixed-width glyphs, which is close
// enough at caption sizes.
func (c *Composer) Layout(lines []Line, highlights map[int]bool, fontSize, anchorY int, window TimeWindow) []DrawUnit {
	if len(lines) == 0 {
		return nil
	}

	lineHeight := int(math.Round(float64(fontSize) * c.style.LineHeightScale))
	totalHeight := len(lines) * lineHeight

	units := make([]DrawUnit, 0, len(lines))
	for i, line := range lines {
		y := middleYExpr(anchorY + i*lineHeight - totalHeight/2)

		if !line.containsAny(highlights) {
			units = append(units, DrawUnit{
				Text:     line.Text(),
				X:        "(w-text_w)/2",
				Y:        y,
				FontSize: fontSize,
				Color:    c.style.FontColor,
				Window:   window,
			})
			continue
		}

		charWidth := int(math.Round(float64(fontSize) * c.style.CharWidthRatio))
		lineWidth := charWidth * line.width()
		preceding := 0
		for _, w := range line {
			color := c.style.FontColor
			highlighted := highlights[w.Index]
			if highlighted {
				color = c.style.HighlightColor
			}
			units = append(units, DrawUnit{
				Text:        w.Text,
				X:           centerXExpr(lineWidth, preceding*charWidth),
				Y:           y,
				FontSize:    fontSize,
				Color:       color,
				Highlighted: highlighted,
				Window:      window,
			})
			preceding += utf8.RuneCountInString(w.Text) + 1
		}
	}
	return units
}

// middleYExpr centers rendered text on the frame middle plus a pixel offset.
func middleYExpr(offset int) string {
	switch {
	case offset > 0:
		return fmt.Sprintf("(h-text_h)/2+%d", offset)
	case offset < 0:
		return fmt.Sprintf("(h-text_h)/2-%d", -offset)
	default:
		return "(h-text_h)/2"
	}
}

// centerXExpr centers an estimated line width on the frame and shifts right
// to the word's slot within it.
func centerXExpr(lineWidth, offset int) string {
	if offset == 0 {
		return fmt.Sprintf("(w-%d)/2", lineWidth)
	}
	return fmt.Sprintf("(w-%d)/2+%d", lineWidth, offset)
}
