package handler

import (
	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Register(req.Email, req.Password, req.Name)
	if err != nil {
		h.logger.WithError(err).Warn("Registration failed")
		return respondError(c, fiber.StatusConflict, err.Error())
	}

	return respondCreated(c, user)
}

func (h *Handler) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}

	token, user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		return respondError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	return respondOK(c, fiber.Map{
		"token": token,
		"user":  user,
	})
}
