package handler

import (
	"time"

	"work-log-server/pkg/calendar"

	"github.com/gofiber/fiber/v2"
)

type saveEntryRequest struct {
	WorkDescription string `json:"work_description"`
}

type setHolidayRequest struct {
	IsHoliday *bool `json:"is_holiday" validate:"required"`
}

func (h *Handler) getDayLog(c *fiber.Ctx) error {
	userID := currentUserID(c)

	date := c.Params("date")
	if !calendar.IsValidDate(date) {
		return respondError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	day, err := h.workLogService.GetDayLog(userID, date, time.Now())
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "failed to load day log")
	}

	return respondOK(c, day)
}

func (h *Handler) saveEntry(c *fiber.Ctx) error {
	userID := currentUserID(c)

	date := c.Params("date")
	if !calendar.IsValidDate(date) {
		return respondError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	slot := c.Params("slot")

	var req saveEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := h.workLogService.SaveEntry(userID, date, slot, req.WorkDescription)
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	return respondOK(c, entry)
}

func (h *Handler) setHoliday(c *fiber.Ctx) error {
	userID := currentUserID(c)

	date := c.Params("date")
	if !calendar.IsValidDate(date) {
		return respondError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	var req setHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.workLogService.SetHoliday(userID, date, *req.IsHoliday); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	return respondOK(c, fiber.Map{
		"date":       date,
		"is_holiday": *req.IsHoliday,
	})
}
