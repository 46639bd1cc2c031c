package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/luizavanter/guialmeidapersonal/internal/repository"
)

// ScheduleHandler adds the scheduling extras on top of the plain
// appointment CRUD.
type ScheduleHandler struct {
	appointments   *repository.Collection
	changeRequests *repository.Collection
}

func NewScheduleHandler(appointments, changeRequests *repository.Collection) *ScheduleHandler {
	return &ScheduleHandler{
		appointments:   appointments,
		changeRequests: changeRequests,
	}
}

type changeRequestBody struct {
	AppointmentID string `json:"appointment_id"`
	RequestedTime string `json:"requested_time"`
	Reason        string `json:"reason"`
}

// RequestChange records a reschedule request and flags the appointment so
// the trainer sees it pending.
func (h *ScheduleHandler) RequestChange(c *fiber.Ctx) error {
	var req changeRequestBody
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}
	if req.AppointmentID == "" {
		return respondFieldError(c, fiber.StatusUnprocessableEntity, "appointment_id", "Appointment is required", "REQUIRED")
	}

	if _, err := h.appointments.Get(req.AppointmentID); err != nil {
		return respondError(c, fiber.StatusNotFound, "Resource not found", "NOT_FOUND")
	}

	doc := repository.Doc{
		"appointment_id": req.AppointmentID,
		"requested_time": req.RequestedTime,
		"reason":         req.Reason,
	}
	if userID, ok := c.Locals("user_id").(string); ok {
		doc["requested_by"] = userID
	}
	created := h.changeRequests.Insert(doc)

	_, _ = h.appointments.Update(req.AppointmentID, repository.Doc{"change_requested": true})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}
