package ffmpeg

import (
	"encoding/json"
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/Gobblerco/ffmpeg-api/internal/overlay"
)

// CodecSettings describes how one container format gets encoded.
type CodecSettings struct {
	VideoCodec      string
	AudioCodec      string
	AudioBitrate    string
	ContainerFormat string
	FileExtension   string
	EncoderPresets  map[string]ffmpeg.KwArgs
}

var codecPresets = map[string]CodecSettings{
	"mp4": {
		VideoCodec:      "libx264",
		AudioCodec:      "aac",
		AudioBitrate:    "192k",
		ContainerFormat: "mp4",
		FileExtension:   ".mp4",
		EncoderPresets: map[string]ffmpeg.KwArgs{
			"balanced": {
				"preset":   "fast",
				"crf":      22,
				"movflags": "+faststart",
			},
			"high_quality": {
				"preset":    "slower",
				"crf":       18,
				"profile:v": "high",
				"movflags":  "+faststart",
			},
		},
	},
	"webm": {
		VideoCodec:      "libvpx-vp9",
		AudioCodec:      "libopus",
		AudioBitrate:    "128k",
		ContainerFormat: "webm",
		FileExtension:   ".webm",
		EncoderPresets: map[string]ffmpeg.KwArgs{
			"balanced": {
				"deadline": "good",
				"cpu-used": 2,
				"row-mt":   1,
			},
			"high_quality": {
				"quality":       "best",
				"cpu-used":      1,
				"row-mt":        1,
				"tile-columns":  2,
				"auto-alt-ref":  1,
				"lag-in-frames": 25,
			},
		},
	},
}

// GetCodecSettings returns the settings for an output format, falling back
// to mp4 when the format is unknown or empty.
func GetCodecSettings(outputFormat string) CodecSettings {
	if settings, ok := codecPresets[strings.ToLower(outputFormat)]; ok {
		return settings
	}
	return codecPresets["mp4"]
}

// VideoMetadata contains probed metadata about a video file.
type VideoMetadata struct {
	Duration float64
	Width    int
	Height   int
	Codec    string
	Bitrate  int64
}

// Processor wraps FFmpeg functionality.
type Processor struct {
	log zerolog.Logger
}

// NewProcessor creates a new FFmpeg processor.
func NewProcessor(log zerolog.Logger) *Processor {
	return &Processor{log: log}
}

// GetVideoMetadata probes a video file for duration, dimensions, codec, and
// bitrate. Duration falls back from the video stream to the container to a
// frame-count estimate.
func (p *Processor) GetVideoMetadata(inputPath string) (*VideoMetadata, error) {
	probe, err := ffmpeg.Probe(inputPath)
	if err != nil {
		return nil, errors.Wrap(err, "error probing video")
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(probe), &data); err != nil {
		return nil, errors.WithStack(err)
	}

	streams, ok := data["streams"].([]interface{})
	if !ok || len(streams) == 0 {
		return nil, errors.New("no streams found in video")
	}

	var videoStream map[string]interface{}
	for _, stream := range streams {
		s, ok := stream.(map[string]interface{})
		if !ok {
			continue
		}
		if codecType, _ := s["codec_type"].(string); codecType == "video" {
			videoStream = s
			break
		}
	}
	if videoStream == nil {
		return nil, errors.New("no video stream found")
	}

	var duration float64

	if durationStr, ok := videoStream["duration"].(string); ok {
		if d, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64); err == nil {
			duration = d
		}
	}

	format, _ := data["format"].(map[string]interface{})

	if duration == 0 && format != nil {
		if durationStr, ok := format["duration"].(string); ok {
			if d, err := strconv.ParseFloat(strings.TrimSpace(durationStr), 64); err == nil {
				duration = d
			}
		}
	}

	if duration == 0 {
		if nbFrames, ok := videoStream["nb_frames"].(string); ok {
			if frames, err := strconv.ParseFloat(nbFrames, 64); err == nil {
				if rate := parseFrameRate(videoStream); rate > 0 {
					duration = frames / rate
				}
			}
		}
	}

	if duration == 0 {
		return nil, errors.New("could not determine video duration")
	}

	width, _ := videoStream["width"].(float64)
	height, _ := videoStream["height"].(float64)
	if width == 0 || height == 0 {
		return nil, errors.New("could not determine video dimensions")
	}
	codec, _ := videoStream["codec_name"].(string)

	meta := &VideoMetadata{
		Duration: duration,
		Width:    int(width),
		Height:   int(height),
		Codec:    codec,
		Bitrate:  probeBitrate(format, videoStream, duration),
	}

	p.log.Debug().
		Str("input", inputPath).
		Float64("duration", meta.Duration).
		Int("width", meta.Width).
		Int("height", meta.Height).
		Str("codec", meta.Codec).
		Msg("probed video")

	return meta, nil
}

func parseFrameRate(videoStream map[string]interface{}) float64 {
	rFrameRate, ok := videoStream["r_frame_rate"].(string)
	if !ok {
		return 0
	}
	nums := strings.Split(rFrameRate, "/")
	if len(nums) != 2 {
		return 0
	}
	num, err1 := strconv.ParseFloat(nums[0], 64)
	den, err2 := strconv.ParseFloat(nums[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0
	}
	return num / den
}

// probeBitrate prefers the container bitrate, then the video stream, then an
// estimate from file size and duration. Zero means unknown.
func probeBitrate(format, videoStream map[string]interface{}, duration float64) int64 {
	if format != nil {
		if bitrateStr, ok := format["bit_rate"].(string); ok {
			if bitrate, err := strconv.ParseInt(bitrateStr, 10, 64); err == nil {
				return bitrate
			}
		}
	}
	if bitrateStr, ok := videoStream["bit_rate"].(string); ok {
		if bitrate, err := strconv.ParseInt(bitrateStr, 10, 64); err == nil {
			return bitrate
		}
	}
	if format != nil && duration > 0 {
		if sizeStr, ok := format["size"].(string); ok {
			if size, err := strconv.ParseInt(sizeStr, 10, 64); err == nil {
				return int64(float64(size*8) / duration)
			}
		}
	}
	return 0
}

// BurnOptions parameterizes one overlay encode.
type BurnOptions struct {
	InputPath  string
	OutputPath string

	// AudioPath, when set, replaces the source audio track entirely.
	AudioPath string

	// Graph is the drawtext command sequence to burn in. An empty graph
	// skips the text stage; combined with no bitrate target the video
	// stream is copied instead of re-encoded.
	Graph overlay.FilterGraph

	// Format picks the codec settings table entry ("mp4" or "webm").
	Format string

	// PresetTier selects among the format's encoder presets.
	PresetTier string

	// VideoBitrate, when set, caps the encode (e.g. "2M") with matching
	// maxrate and bufsize.
	VideoBitrate string

	// Duration trims the output, keeping a longer replacement audio track
	// from stretching the video. Zero leaves the output untrimmed.
	Duration float64
}

// Burn renders the filter graph onto the video and muxes in the replacement
// audio, producing OutputPath with the extension the format requires. It
// returns the final output path.
func (p *Processor) Burn(opts BurnOptions) (string, error) {
	settings := GetCodecSettings(opts.Format)
	outputPath := EnsureExtension(opts.OutputPath, settings.FileExtension)

	input := ffmpeg.Input(opts.InputPath)

	video := input.Get("v")
	for _, cmd := range opts.Graph {
		video = video.Filter("drawtext", ffmpeg.Args{cmd.String()})
	}

	audio := input.Get("a")
	if opts.AudioPath != "" {
		audio = ffmpeg.Input(opts.AudioPath).Get("a")
	}

	outputKwargs := ffmpeg.KwArgs{
		"c:a": settings.AudioCodec,
		"b:a": settings.AudioBitrate,
	}
	if opts.Duration > 0 {
		outputKwargs["t"] = fmt.Sprintf("%.3f", opts.Duration)
	}

	if opts.Graph.Empty() && opts.VideoBitrate == "" {
		// Nothing to draw and no bitrate target: keep the video stream
		// as is and only swap the audio.
		outputKwargs["c:v"] = "copy"
	} else {
		outputKwargs["c:v"] = settings.VideoCodec
		outputKwargs["pix_fmt"] = "yuv420p"
		outputKwargs["threads"] = GetOptimalThreadCount()

		tier := opts.PresetTier
		if tier == "" {
			tier = "balanced"
		}
		for k, v := range settings.EncoderPresets[tier] {
			outputKwargs[k] = v
		}

		if opts.VideoBitrate != "" {
			outputKwargs["b:v"] = opts.VideoBitrate
			outputKwargs["maxrate"] = opts.VideoBitrate
			outputKwargs["bufsize"] = doubleBitrate(opts.VideoBitrate)
		}
	}

	p.log.Debug().
		Str("input", opts.InputPath).
		Str("audio", opts.AudioPath).
		Str("output", outputPath).
		Int("draw_commands", len(opts.Graph)).
		Msg("starting encode")

	err := ffmpeg.Output([]*ffmpeg.Stream{video, audio}, outputPath, outputKwargs).
		OverWriteOutput().
		ErrorToStdOut().
		Run()
	if err != nil {
		return "", errors.Wrap(err, "failed to render video")
	}

	return outputPath, nil
}

// GetOptimalThreadCount returns 75% of the available cores, at least one, to
// keep encodes from starving the host.
func GetOptimalThreadCount() int {
	cpuCount := runtime.NumCPU()
	return int(math.Max(1, float64(cpuCount)*0.75))
}

// EnsureExtension swaps any known video extension for the required one.
func EnsureExtension(filename, extension string) string {
	extensions := []string{".mp4", ".webm", ".mkv", ".avi", ".mov"}
	for _, ext := range extensions {
		filename = strings.TrimSuffix(filename, ext)
	}
	return filename + extension
}

// CapBitrate keeps a requested bitrate from exceeding roughly what the input
// carries, so re-encodes do not inflate files. Unknown input bitrate leaves
// the request untouched.
func CapBitrate(requested string, inputBitrate int64) string {
	if inputBitrate <= 0 {
		return requested
	}
	maxBps := int64(float64(inputBitrate) * 1.05)
	if bitrateToBps(requested) <= maxBps {
		return requested
	}
	return formatBps(maxBps)
}

// bitrateToBps parses a bitrate token like "2M" or "525k" into bits per
// second.
func bitrateToBps(bitrate string) int64 {
	value := strings.TrimRight(bitrate, "Mk")
	number, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 2_000_000 // Default to 2M if parsing fails
	}
	if strings.HasSuffix(bitrate, "k") {
		return number * 1_000
	}
	return number * 1_000_000
}

func formatBps(bps int64) string {
	if bps >= 1_000_000 {
		return fmt.Sprintf("%dM", bps/1_000_000)
	}
	return fmt.Sprintf("%dk", bps/1_000)
}

func doubleBitrate(bitrate string) string {
	return formatBps(2 * bitrateToBps(bitrate))
}
