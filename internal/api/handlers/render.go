package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/Gobblerco/ffmpeg-api/internal/config"
	"github.com/Gobblerco/ffmpeg-api/internal/platform"
	"github.com/Gobblerco/ffmpeg-api/internal/processor"
	"github.com/Gobblerco/ffmpeg-api/pkg/types"
)

var (
	videoExtensions = []string{".mp4", ".webm", ".mov", ".mkv", ".avi"}
	audioExtensions = []string{".mp3", ".m4a", ".aac", ".wav", ".ogg", ".opus"}
)

// RenderHandler serves the render endpoint.
type RenderHandler struct {
	cfg      *config.Config
	renderer *processor.Renderer
	log      zerolog.Logger
}

func RegisterRenderRoutes(app *fiber.App, cfg *config.Config, renderer *processor.Renderer, log zerolog.Logger) {
	h := &RenderHandler{cfg: cfg, renderer: renderer, log: log}
	app.Post("/api/v1/render", h.render)
}

func (h *RenderHandler) render(c *fiber.Ctx) error {
	req := types.RenderRequest{
		Setup:          c.FormValue("setup"),
		Punchline:      c.FormValue("punchline"),
		Channel:        c.FormValue("channel"),
		FontColor:      c.FormValue("font_color"),
		HighlightColor: c.FormValue("highlight_color"),
		Platform:       types.ProcessingPlatform(c.FormValue("platform")),
		FontSize:       processor.DefaultFontSize,
	}

	if v := c.FormValue("font_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "font_size must be a positive integer"})
		}
		req.FontSize = n
	}

	if req.Platform != "" {
		if _, err := platform.Get(string(req.Platform)); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "video file is required"})
	}
	videoExt := strings.ToLower(filepath.Ext(videoFile.Filename))
	if !lo.Contains(videoExtensions, videoExt) {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"error": "unsupported video format: " + videoExt})
	}

	audioFile, _ := c.FormFile("audio")
	if audioFile != nil {
		audioExt := strings.ToLower(filepath.Ext(audioFile.Filename))
		if !lo.Contains(audioExtensions, audioExt) {
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"error": "unsupported audio format: " + audioExt})
		}
	}

	workDir, err := os.MkdirTemp(h.cfg.WorkDir, config.TempDirPrefix)
	if err != nil {
		return errJSON(c, err)
	}
	defer os.RemoveAll(workDir)

	opts := processor.Options{
		Setup:          req.Setup,
		Punchline:      req.Punchline,
		Channel:        req.Channel,
		FontSize:       req.FontSize,
		FontColor:      req.FontColor,
		HighlightColor: req.HighlightColor,
		TargetPlatform: string(req.Platform),
	}

	opts.InputPath, err = h.saveUpload(c, videoFile, workDir, "input")
	if err != nil {
		return errJSON(c, err)
	}
	if audioFile != nil {
		opts.AudioPath, err = h.saveUpload(c, audioFile, workDir, "audio")
		if err != nil {
			return errJSON(c, err)
		}
	}

	opts.OutputPath = filepath.Join(h.cfg.OutputDir, fmt.Sprintf("%s_%d.mp4",
		processor.SanitizeFilename(videoFile.Filename), time.Now().UnixMilli()))

	h.log.Info().
		Str("video", videoFile.Filename).
		Bool("replacement_audio", audioFile != nil).
		Str("platform", string(req.Platform)).
		Msg("render request accepted")

	result, err := h.renderer.Render(opts)
	if err != nil {
		h.log.Error().Err(err).Msg("render failed")
		return errJSON(c, err)
	}

	return c.JSON(result)
}

func (h *RenderHandler) saveUpload(c *fiber.Ctx, file *multipart.FileHeader, dir, name string) (string, error) {
	path := filepath.Join(dir, name+strings.ToLower(filepath.Ext(file.Filename)))
	if err := c.SaveFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

func errJSON(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
