package processor

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Gobblerco/ffmpeg-api/internal/ffmpeg"
	"github.com/Gobblerco/ffmpeg-api/internal/overlay"
	"github.com/Gobblerco/ffmpeg-api/internal/platform"
	"github.com/Gobblerco/ffmpeg-api/pkg/types"
)

// DefaultFontSize is used when options leave the caption font size unset.
const DefaultFontSize = 80

// Options configures a single render.
type Options struct {
	InputPath  string
	OutputPath string

	// AudioPath, when set, replaces the source audio track.
	AudioPath string

	Setup     string
	Punchline string
	Channel   string

	// FontSize of the captions; zero applies DefaultFontSize.
	FontSize int

	// FontColor and HighlightColor override the style defaults when set.
	FontColor      string
	HighlightColor string

	// TargetPlatform optionally selects an encode target from the
	// platform registry.
	TargetPlatform string
}

func (o *Options) validate() error {
	if o.InputPath == "" {
		return errors.New("input path is required")
	}
	if o.OutputPath == "" {
		return errors.New("output path is required")
	}
	if o.FontSize < 0 {
		return errors.New("font size must be positive")
	}
	if o.TargetPlatform != "" {
		if _, err := platform.Get(o.TargetPlatform); err != nil {
			return err
		}
	}
	return nil
}

// Renderer owns the caption-burn pipeline: probe, compose, encode. A fixed
// number of render slots bounds concurrent encodes; Render blocks until a
// slot frees up.
type Renderer struct {
	style  overlay.Style
	ffmpeg *ffmpeg.Processor
	log    zerolog.Logger
	slots  chan struct{}
}

// NewRenderer creates a renderer with the given base style and at most slots
// concurrent encodes.
func NewRenderer(style overlay.Style, slots int, log zerolog.Logger) *Renderer {
	if slots < 1 {
		slots = 1
	}
	return &Renderer{
		style:  style,
		ffmpeg: ffmpeg.NewProcessor(log),
		log:    log,
		slots:  make(chan struct{}, slots),
	}
}

// SupportedPlatforms returns the names of the registered encode targets.
func SupportedPlatforms() []string {
	return platform.Supported()
}

// Render burns the captions and watermark onto the input video, muxes in the
// replacement audio when one is given, and encodes the result.
func (r *Renderer) Render(opts Options) (*types.RenderResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(opts.InputPath); err != nil {
		return nil, errors.Wrap(err, "input video not accessible")
	}
	if opts.AudioPath != "" {
		if _, err := os.Stat(opts.AudioPath); err != nil {
			return nil, errors.Wrap(err, "replacement audio not accessible")
		}
	}

	r.slots <- struct{}{}
	defer func() { <-r.slots }()

	meta, err := r.ffmpeg.GetVideoMetadata(opts.InputPath)
	if err != nil {
		return nil, err
	}

	fontSize := opts.FontSize
	if fontSize == 0 {
		fontSize = DefaultFontSize
	}

	style := r.style
	if opts.FontColor != "" {
		style.FontColor = opts.FontColor
	}
	if opts.HighlightColor != "" {
		style.HighlightColor = opts.HighlightColor
	}

	graph := overlay.NewComposer(style).
		BuildGraph(opts.Setup, opts.Punchline, opts.Channel, fontSize, meta.Width)

	burn := ffmpeg.BurnOptions{
		InputPath:  opts.InputPath,
		AudioPath:  opts.AudioPath,
		OutputPath: opts.OutputPath,
		Graph:      graph,
		Format:     formatFromPath(opts.OutputPath),
	}
	if opts.AudioPath != "" {
		// Keep a longer replacement track from stretching the video.
		burn.Duration = meta.Duration
	}

	var target platform.Platform
	if opts.TargetPlatform != "" {
		target, _ = platform.Get(opts.TargetPlatform)
		burn.Format = target.GetOutputFormat()
		burn.PresetTier = target.GetPresetTier()
		burn.VideoBitrate = ffmpeg.CapBitrate(target.GetVideoBitrate(), meta.Bitrate)
		if max := target.GetMaxDuration(); meta.Duration > float64(max) {
			r.log.Warn().
				Str("platform", opts.TargetPlatform).
				Float64("duration", meta.Duration).
				Int("max_seconds", max).
				Msg("video exceeds platform duration limit")
		}
	}

	if err := ensureDir(opts.OutputPath); err != nil {
		return nil, err
	}

	r.log.Info().
		Str("input", opts.InputPath).
		Str("output", opts.OutputPath).
		Int("draw_commands", len(graph)).
		Msg("rendering")

	outputPath, err := r.ffmpeg.Burn(burn)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return nil, errors.Wrap(err, "render produced no output")
	}
	if target != nil && info.Size() > target.GetMaxFileSize() {
		r.log.Warn().
			Str("platform", opts.TargetPlatform).
			Int64("size_bytes", info.Size()).
			Int64("max_bytes", target.GetMaxFileSize()).
			Msg("output exceeds platform file size limit")
	}

	r.log.Info().
		Str("output", outputPath).
		Int64("size_bytes", info.Size()).
		Msg("render complete")

	return &types.RenderResult{
		OutputPath: outputPath,
		Width:      meta.Width,
		Height:     meta.Height,
		Duration:   meta.Duration,
	}, nil
}

var (
	unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9-_.]`)
	repeatedUnders  = regexp.MustCompile(`_+`)
)

// SanitizeFilename reduces an upload-supplied name to a safe output basename.
func SanitizeFilename(filename string) string {
	sanitized := strings.TrimSuffix(filename, filepath.Ext(filename))
	sanitized = unsafeNameChars.ReplaceAllString(sanitized, "_")
	sanitized = repeatedUnders.ReplaceAllString(sanitized, "_")
	sanitized = strings.Trim(sanitized, "_")
	if sanitized == "" {
		return "render"
	}
	return sanitized
}

func formatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return errors.Wrap(os.MkdirAll(dir, 0755), "failed to create output directory")
}
