package overlay

import (
	"fmt"
	"strings"
)

// DrawText is one fully specified text draw command for the rendering
// backend. Fields map one to one onto drawtext options; building the option
// string happens only in String so escaping lives in a single place.
type DrawText struct {
	Text        string
	X           string
	Y           string
	FontSize    int
	Color       string
	Alpha       float64
	BorderColor string
	BorderAlpha float64
	BorderWidth int
	Font        string
	FontFile    string
	Enable      string
}

// String serializes the command as a drawtext option string, without the
// leading filter name. Text is escaped here; colors at full opacity stay
// bare tokens, anything lower gets the @alpha suffix.
func (d DrawText) String() string {
	parts := make([]string, 0, 9)
	parts = append(parts, fmt.Sprintf("text='%s'", escapeText(d.Text)))
	if d.FontFile != "" {
		parts = append(parts, "fontfile="+d.FontFile)
	} else if d.Font != "" {
		parts = append(parts, "font="+d.Font)
	}
	parts = append(parts, fmt.Sprintf("fontsize=%d", d.FontSize))
	parts = append(parts, "fontcolor="+colorToken(d.Color, d.Alpha))
	if d.BorderWidth > 0 {
		parts = append(parts,
			fmt.Sprintf("borderw=%d", d.BorderWidth),
			"bordercolor="+colorToken(d.BorderColor, d.BorderAlpha),
		)
	}
	parts = append(parts, "x="+d.X, "y="+d.Y)
	if d.Enable != "" {
		parts = append(parts, fmt.Sprintf("enable='%s'", d.Enable))
	}
	return strings.Join(parts, ":")
}

func colorToken(color string, alpha float64) string {
	if alpha >= 1 {
		return color
	}
	return fmt.Sprintf("%s@%.2f", color, alpha)
}

// escapeText handles the characters the sanitizer lets through that would
// still break a single-quoted drawtext value.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "'", `\'`)
}
