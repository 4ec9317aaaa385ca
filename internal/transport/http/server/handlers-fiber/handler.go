// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/dacaceros97/mentorias-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the appointment API using the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("handler"),
		uc:  usecase,
	}
}

// RegisterHandlers mounts the appointment routes on router.
func RegisterHandlers(router fiber.Router, h *Handler) {
	router.Post("/api/appointments", h.PostAppointments)
	router.Get("/api/appointments", h.GetAppointments)
}
