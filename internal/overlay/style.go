package overlay

// GlowLayer describes one pass of the layered text glow. Layers are drawn
// faintest and widest first so later passes sit on top.
type GlowLayer struct {
	Alpha       float64
	BorderWidth int
	BorderAlpha float64
}

// Style holds every tunable of the caption renderer. A Style is copied into
// the Composer at construction time and never mutated afterwards, so one base
// Style can be shared across concurrent renders.
type Style struct {
	// FontColor is the default text color, HighlightColor the color of
	// emphasized words. Both are ffmpeg color tokens (names or #RRGGBB).
	FontColor      string
	HighlightColor string

	// GlowColor is the neutral halo color used by the outer glow passes of
	// non-highlighted text. Highlighted words glow in their own color.
	GlowColor string

	// Font is the fontconfig family used when FontFile is empty.
	Font     string
	FontFile string

	// LineHeightScale sets line advance as a multiple of the font size.
	LineHeightScale float64

	// CharWidthRatio approximates average glyph width as a fraction of the
	// font size. Per-word positioning assumes this fixed width, which is a
	// monospace approximation on proportional fonts.
	CharWidthRatio float64

	// UsableWidthFrac is the fraction of the frame width captions may fill.
	UsableWidthFrac float64

	// Vertical anchors, in pixels relative to the frame middle. Caption
	// blocks are centered around their anchor.
	SetupAnchorY     int
	PunchlineAnchorY int
	WatermarkAnchorY int

	// WatermarkScale sets the watermark font size as a fraction of the
	// caption font size.
	WatermarkScale float64

	// SetupHideAt and PunchlineShowAt bound the two caption windows in
	// seconds. The gap between them is deliberate pacing.
	SetupHideAt     float64
	PunchlineShowAt float64

	// Glow is the fixed four-pass layer table. The last layer is the solid
	// fill and always renders in the unit's true color.
	Glow [4]GlowLayer
}

// DefaultStyle returns the stock look: white text, mint highlights, a soft
// white glow, and the 7.5s/8.5s caption windows.
func DefaultStyle() Style {
	return Style{
		FontColor:        "white",
		HighlightColor:   "#98FBCB",
		GlowColor:        "white",
		Font:             "sans",
		LineHeightScale:  1.3,
		CharWidthRatio:   0.6,
		UsableWidthFrac:  0.8,
		SetupAnchorY:     0,
		PunchlineAnchorY: 0,
		WatermarkAnchorY: 400,
		WatermarkScale:   0.5,
		SetupHideAt:      7.5,
		PunchlineShowAt:  8.5,
		Glow: [4]GlowLayer{
			{Alpha: 0.1, BorderWidth: 16, BorderAlpha: 0.1},
			{Alpha: 0.2, BorderWidth: 12, BorderAlpha: 0.2},
			{Alpha: 0.35, BorderWidth: 7, BorderAlpha: 0.35},
			{Alpha: 1, BorderWidth: 2, BorderAlpha: 1},
		},
	}
}

// MaxCharsPerLine derives the wrap budget from the frame width and font size:
// floor(UsableWidthFrac x frameWidth / (fontSize x CharWidthRatio)), never
// below 1. A 1080 wide frame at font size 80 yields 18.
func (s Style) MaxCharsPerLine(frameWidth, fontSize int) int {
	if frameWidth < 1 || fontSize < 1 {
		return 1
	}
	budget := int(s.UsableWidthFrac * float64(frameWidth) / (float64(fontSize) * s.CharWidthRatio))
	if budget < 1 {
		return 1
	}
	return budget
}
