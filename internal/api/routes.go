package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Gobblerco/ffmpeg-api/internal/api/handlers"
	"github.com/Gobblerco/ffmpeg-api/internal/config"
	"github.com/Gobblerco/ffmpeg-api/internal/processor"
)

// NewServer builds the HTTP app with the upload limit from config.
func NewServer(cfg *config.Config, renderer *processor.Renderer, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "ffmpeg-api",
		BodyLimit: cfg.MaxUploadMB * 1024 * 1024,
	})

	handlers.RegisterHealthRoutes(app)
	handlers.RegisterRenderRoutes(app, cfg, renderer, log)

	return app
}
