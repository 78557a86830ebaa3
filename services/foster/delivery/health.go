package delivery

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewHealthDelivery(app *fiber.App, registry *prometheus.Registry) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the AAUPR Backend API!")
	})

	app.Get("/api/test", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "success",
			"message":   "API is running and accessible",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}
