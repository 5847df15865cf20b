package handler

import (
	"strconv"

	"work-log-server/pkg/calendar"

	"github.com/gofiber/fiber/v2"
)

type notifyRequest struct {
	Destination string `json:"destination"`
}

func (h *Handler) dailySummary(c *fiber.Ctx) error {
	userID := currentUserID(c)

	date := c.Params("date")
	if !calendar.IsValidDate(date) {
		return respondError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	summary, err := h.summaryService.Daily(userID, date)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "failed to compute daily summary")
	}

	return respondOK(c, summary)
}

// monthlySummary validates year and month here; the aggregator itself assumes
// validated input.
func (h *Handler) monthlySummary(c *fiber.Ctx) error {
	userID := currentUserID(c)

	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 2000 || year > 2100 {
		return respondError(c, fiber.StatusBadRequest, "invalid year, expected 2000-2100")
	}

	month, err := strconv.Atoi(c.Params("month"))
	if err != nil || month < 1 || month > 12 {
		return respondError(c, fiber.StatusBadRequest, "invalid month, expected 1-12")
	}

	summary, err := h.summaryService.Monthly(userID, year, month)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "failed to compute monthly summary")
	}

	return respondOK(c, summary)
}

func (h *Handler) notifyDaily(c *fiber.Ctx) error {
	userID := currentUserID(c)

	date := c.Params("date")
	if !calendar.IsValidDate(date) {
		return respondError(c, fiber.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	var req notifyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, fiber.StatusBadRequest, "invalid request body")
		}
	}

	if err := h.summaryService.NotifyDaily(userID, date, req.Destination); err != nil {
		return respondError(c, fiber.StatusBadGateway, err.Error())
	}

	return respondOK(c, fiber.Map{
		"date":   date,
		"status": "sent",
	})
}
