package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/dacaceros97/mentorias-backend/internal/entities"
	"github.com/dacaceros97/mentorias-backend/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, entities.ErrMissingFields):
		status = http.StatusBadRequest
		msg = "missing required fields"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrNoMentorAvailable):
		msg = "could not assign a mentor, make sure mentors are registered"
	}

	return c.Status(status).JSON(errorResponse(msg))
}

// logError keeps error level for server faults; rejected input and missing mentors are warnings.
func (h *Handler) logError(msg string, err error) {
	if errors.Is(err, entities.ErrInvalidArgument) || errors.Is(err, entities.ErrNoMentorAvailable) {
		h.log.Warnw(msg, "error", err.Error())
		return
	}
	h.log.Errorw(msg, "error", err.Error())
}

func errorResponse(msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: msg}
}

// ErrorHandler renders errors escaping the handlers (unknown routes, panics, body limit)
// in the API error shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		msg = fe.Message
	}
	return c.Status(status).JSON(errorResponse(msg))
}
