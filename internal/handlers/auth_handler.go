package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localsearch/backend/internal/dto"
	"github.com/localsearch/backend/internal/middleware"
	"github.com/localsearch/backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	userID, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: "Username already exists",
			})
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: "Email already exists",
			})
		case errors.Is(err, services.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: "Invalid role",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Error during registration",
		})
	}

	return c.JSON(dto.RegisterResponse{
		Message: "User registered successfully",
		UserID:  userID,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Invalid username or password",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Error during login",
		})
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	username, err := middleware.Username(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "Unauthorized",
		})
	}

	info, err := h.authService.CurrentUser(username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Error fetching user info",
		})
	}

	return c.JSON(info)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	username, err := middleware.Username(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Message: "Unauthorized",
		})
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid request body",
		})
	}

	if err := h.authService.ChangePassword(username, &req); err != nil {
		if errors.Is(err, services.ErrInvalidOldPassword) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Message: "Old password is incorrect",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Error changing password",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Password changed successfully"})
}
