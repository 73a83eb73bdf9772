package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Gobblerco/ffmpeg-api/internal/api"
	"github.com/Gobblerco/ffmpeg-api/internal/config"
	"github.com/Gobblerco/ffmpeg-api/internal/processor"
)

var (
	rootCmd = &cobra.Command{
		Use:   "ffmpeg-api",
		Short: "A caption burning service for short-form video",
		Long: `ffmpeg-api burns timed, highlighted captions and a channel watermark onto
videos, optionally swapping in a replacement audio track. It runs as an HTTP
service or as a one-shot command-line render.

Examples:
  # Render captions onto a video
  ffmpeg-api render -i input.mp4 -o out.mp4 --setup "I told my wife a joke" --punchline "she was not amused" --channel "@MyChannel"

  # Start the HTTP service on port 3000
  ffmpeg-api serve`,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP rendering service",
		Long: `Start the HTTP service. Configuration comes from the environment (PORT,
WORK_DIR, OUTPUT_DIR, RENDER_SLOTS, MAX_UPLOAD_MB, LOG_LEVEL), with a .env
file loaded when present.

Example:
  ffmpeg-api serve --port 8080 --style style.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			stylePath, _ := cmd.Flags().GetString("style")

			// .env fills only variables that are not already set
			envLoaded := godotenv.Load() == nil

			cfg := config.Load()
			logger := newLogger(cfg.LogLevel, verbose)
			if envLoaded {
				logger.Debug().Msg("loaded environment from .env")
			}

			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}

			style, err := config.LoadStyle(stylePath)
			if err != nil {
				return err
			}

			renderer := processor.NewRenderer(style, cfg.RenderSlots, logger)
			app := api.NewServer(cfg, renderer, logger)

			logger.Info().
				Str("port", cfg.Port).
				Int("render_slots", cfg.RenderSlots).
				Strs("platforms", processor.SupportedPlatforms()).
				Msg("listening")

			return app.Listen(":" + cfg.Port)
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Render captions onto a single video",
		Long: fmt.Sprintf(`Burn the setup and punchline captions plus the channel watermark onto a
video, optionally replacing its audio track.

Supported platforms:
%s
Example:
  ffmpeg-api render -i input.mp4 -a voiceover.mp3 -o out.mp4 --setup "the setup" --punchline "the punchline" --channel "@MyChannel" -t tiktok`,
			formatSupportedPlatforms()),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath, _ := cmd.Flags().GetString("input")
			audioPath, _ := cmd.Flags().GetString("audio")
			outputPath, _ := cmd.Flags().GetString("output")
			setup, _ := cmd.Flags().GetString("setup")
			punchline, _ := cmd.Flags().GetString("punchline")
			channel, _ := cmd.Flags().GetString("channel")
			fontSize, _ := cmd.Flags().GetInt("font-size")
			fontColor, _ := cmd.Flags().GetString("font-color")
			highlightColor, _ := cmd.Flags().GetString("highlight-color")
			targetPlatform, _ := cmd.Flags().GetString("platform")
			stylePath, _ := cmd.Flags().GetString("style")
			verbose, _ := cmd.Flags().GetBool("verbose")

			logger := newLogger(os.Getenv("LOG_LEVEL"), verbose)

			style, err := config.LoadStyle(stylePath)
			if err != nil {
				return err
			}

			renderer := processor.NewRenderer(style, 1, logger)
			result, err := renderer.Render(processor.Options{
				InputPath:      inputPath,
				AudioPath:      audioPath,
				OutputPath:     outputPath,
				Setup:          setup,
				Punchline:      punchline,
				Channel:        channel,
				FontSize:       fontSize,
				FontColor:      fontColor,
				HighlightColor: highlightColor,
				TargetPlatform: targetPlatform,
			})
			if err != nil {
				return err
			}

			fmt.Println(result.OutputPath)
			return nil
		},
	}
)

func formatSupportedPlatforms() string {
	var sb strings.Builder
	for _, platform := range processor.SupportedPlatforms() {
		sb.WriteString(fmt.Sprintf("- %s\n", platform))
	}
	return sb.String()
}

func newLogger(level string, verbose bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().Logger()
}

func init() {
	// Serve command flags
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides PORT)")
	serveCmd.Flags().String("style", "", "Path to a YAML style file")
	serveCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Render command flags
	renderCmd.Flags().StringP("input", "i", "", "Input video file")
	renderCmd.Flags().StringP("audio", "a", "", "Replacement audio track")
	renderCmd.Flags().StringP("output", "o", "", "Output video path")
	renderCmd.Flags().String("setup", "", "Setup caption, visible until 7.5s")
	renderCmd.Flags().String("punchline", "", "Punchline caption, visible from 8.5s")
	renderCmd.Flags().String("channel", "", "Channel watermark text")
	renderCmd.Flags().Int("font-size", processor.DefaultFontSize, "Caption font size in pixels")
	renderCmd.Flags().String("font-color", "", "Caption color (name or #RRGGBB)")
	renderCmd.Flags().String("highlight-color", "", "Highlighted word color")
	renderCmd.Flags().StringP("platform", "t", "",
		fmt.Sprintf("Target platform (%s)", strings.Join(processor.SupportedPlatforms(), ", ")))
	renderCmd.Flags().String("style", "", "Path to a YAML style file")
	renderCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	renderCmd.MarkFlagRequired("input")
	renderCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
