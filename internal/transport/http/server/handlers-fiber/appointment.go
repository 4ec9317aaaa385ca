package handlers_fiber

import (
	"net/http"

	"github.com/dacaceros97/mentorias-backend/internal/mapper"
	"github.com/dacaceros97/mentorias-backend/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

const appointmentCreatedMessage = "Appointment booked successfully"

// PostAppointments books an appointment with an automatically assigned mentor.
func (h *Handler) PostAppointments(c *fiber.Ctx) error {
	var body dto.CreateAppointmentRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Warnw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse("invalid body"))
	}

	appt, err := h.uc.CreateAppointment(c.UserContext(), mapper.FromCreateAppointment(body))
	if err != nil {
		h.logError("failed to book appointment", err)
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(dto.CreateAppointmentResponse{
		Message:     appointmentCreatedMessage,
		Appointment: mapper.ToAppointment(*appt),
	})
}

// GetAppointments lists every appointment ordered by date and time.
func (h *Handler) GetAppointments(c *fiber.Ctx) error {
	list, err := h.uc.ListAppointments(c.UserContext())
	if err != nil {
		h.logError("failed to list appointments", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAppointmentList(list))
}
