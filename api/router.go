package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

// NewApp builds the fiber application with every route registered.
func NewApp(config *Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "schedsim",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestLogger)

	handler := NewSchedulerHandlerImpl(config)
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/policies", handler.Policies)
		v1.Post("/schedule/all", handler.AllPolicies)
		v1.Post("/schedule/:policy", handler.Schedule)
	}
	return app
}

func requestLogger(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()
	logrus.Infof("%s %s -> %d (%v)", ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), time.Since(start))
	return err
}
