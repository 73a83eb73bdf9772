package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Gobblerco/ffmpeg-api/internal/overlay"
)

// StyleFile mirrors the optional YAML style document. Zero values mean "keep
// the default"; the vertical anchors are pointers because zero is a valid
// anchor.
type StyleFile struct {
	FontColor        string   `yaml:"font_color"`
	HighlightColor   string   `yaml:"highlight_color"`
	GlowColor        string   `yaml:"glow_color"`
	Font             string   `yaml:"font"`
	FontFile         string   `yaml:"font_file"`
	LineHeightScale  float64  `yaml:"line_height_scale"`
	CharWidthRatio   float64  `yaml:"char_width_ratio"`
	UsableWidthFrac  float64  `yaml:"usable_width_frac"`
	SetupAnchorY     *int     `yaml:"setup_anchor_y"`
	PunchlineAnchorY *int     `yaml:"punchline_anchor_y"`
	WatermarkAnchorY *int     `yaml:"watermark_anchor_y"`
	WatermarkScale   float64  `yaml:"watermark_scale"`
	SetupHideAt      *float64 `yaml:"setup_hide_at"`
	PunchlineShowAt  *float64 `yaml:"punchline_show_at"`
}

// LoadStyle returns the overlay style, overlaid with the YAML document at
// path when one is given. An empty path means the stock style.
func LoadStyle(path string) (overlay.Style, error) {
	style := overlay.DefaultStyle()
	if path == "" {
		return style, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return style, errors.Wrap(err, "failed to read style file")
	}

	var file StyleFile
	if err := yaml.Unmarshal(contents, &file); err != nil {
		return style, errors.Wrap(err, "failed to parse style file")
	}

	file.apply(&style)
	if err := validateStyle(style); err != nil {
		return overlay.DefaultStyle(), err
	}
	return style, nil
}

func (f StyleFile) apply(style *overlay.Style) {
	if f.FontColor != "" {
		style.FontColor = f.FontColor
	}
	if f.HighlightColor != "" {
		style.HighlightColor = f.HighlightColor
	}
	if f.GlowColor != "" {
		style.GlowColor = f.GlowColor
	}
	if f.Font != "" {
		style.Font = f.Font
	}
	if f.FontFile != "" {
		style.FontFile = f.FontFile
	}
	if f.LineHeightScale != 0 {
		style.LineHeightScale = f.LineHeightScale
	}
	if f.CharWidthRatio != 0 {
		style.CharWidthRatio = f.CharWidthRatio
	}
	if f.UsableWidthFrac != 0 {
		style.UsableWidthFrac = f.UsableWidthFrac
	}
	if f.SetupAnchorY != nil {
		style.SetupAnchorY = *f.SetupAnchorY
	}
	if f.PunchlineAnchorY != nil {
		style.PunchlineAnchorY = *f.PunchlineAnchorY
	}
	if f.WatermarkAnchorY != nil {
		style.WatermarkAnchorY = *f.WatermarkAnchorY
	}
	if f.WatermarkScale != 0 {
		style.WatermarkScale = f.WatermarkScale
	}
	if f.SetupHideAt != nil {
		style.SetupHideAt = *f.SetupHideAt
	}
	if f.PunchlineShowAt != nil {
		style.PunchlineShowAt = *f.PunchlineShowAt
	}
}

func validateStyle(style overlay.Style) error {
	if style.LineHeightScale <= 0 {
		return errors.New("line_height_scale must be positive")
	}
	if style.CharWidthRatio <= 0 {
		return errors.New("char_width_ratio must be positive")
	}
	if style.UsableWidthFrac <= 0 || style.UsableWidthFrac > 1 {
		return errors.New("usable_width_frac must be in (0, 1]")
	}
	if style.WatermarkScale <= 0 {
		return errors.New("watermark_scale must be positive")
	}
	if style.SetupHideAt < 0 || style.PunchlineShowAt < 0 {
		return errors.New("caption window times must not be negative")
	}
	if style.PunchlineShowAt < style.SetupHideAt {
		return errors.New("punchline must not appear before the setup hides")
	}
	return nil
}
