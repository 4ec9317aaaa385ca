// Package server assembles the fiber application serving the booking API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/dacaceros97/mentorias-backend/config"
	"github.com/dacaceros97/mentorias-backend/internal/transport/http/middleware"
	handlers_fiber "github.com/dacaceros97/mentorias-backend/internal/transport/http/server/handlers-fiber"
	"github.com/dacaceros97/mentorias-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

const (
	bannerMessage = "English mentoring booking API is running"
	readyTimeout  = 2 * time.Second
)

// ReadyCheck reports whether backing services are reachable.
type ReadyCheck func(ctx context.Context) error

// New builds the HTTP application with middlewares and routes.
func New(cfg config.HTTPConfig, log *zap.SugaredLogger, uc usecase.InterfaceUsecase, ready ReadyCheck) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "mentorias-backend",
		ReadTimeout:           cfg.RequestTimeout,
		WriteTimeout:          cfg.RequestTimeout,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          handlers_fiber.ErrorHandler,
		DisableStartupMessage: true,
	})

	origins := cfg.CORSOrigins
	if origins == "" {
		origins = "*"
	}

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger(log))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).SendString(bannerMessage)
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/readyz", func(c *fiber.Ctx) error {
		if ready == nil {
			return c.SendStatus(fiber.StatusOK)
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
		defer cancel()
		if err := ready(ctx); err != nil {
			log.Warnw("readiness check failed", "error", err)
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	handlers_fiber.RegisterHandlers(app, handlers_fiber.NewHandler(log, uc))
	return app
}
