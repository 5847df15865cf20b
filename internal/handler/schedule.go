package handler

import (
	"github.com/gofiber/fiber/v2"
)

type updateScheduleRequest struct {
	StartTime           string `json:"start_time" validate:"required,len=5"`
	EndTime             string `json:"end_time" validate:"required,len=5"`
	SlotDurationMinutes int    `json:"slot_duration_minutes" validate:"required,oneof=15 30 60"`
	Timezone            string `json:"timezone" validate:"required"`
}

func (h *Handler) getSchedule(c *fiber.Ctx) error {
	userID := currentUserID(c)

	config, err := h.scheduleService.GetOrCreate(userID)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "failed to load schedule")
	}

	return respondOK(c, fiber.Map{
		"schedule": config,
		"slots":    h.scheduleService.Slots(config),
	})
}

func (h *Handler) updateSchedule(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req updateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	config, err := h.scheduleService.Update(userID, req.StartTime, req.EndTime, req.SlotDurationMinutes, req.Timezone)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	return respondOK(c, fiber.Map{
		"schedule": config,
		"slots":    h.scheduleService.Slots(config),
	})
}
