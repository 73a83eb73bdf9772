package handlers

import "github.com/gofiber/fiber/v2"

func RegisterHealthRoutes(app *fiber.App) {
	app.Get("/healthz", health)
}

func health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
