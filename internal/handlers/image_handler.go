package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localsearch/backend/internal/dto"
	"github.com/localsearch/backend/internal/repository"
)

type ImageHandler struct {
	businesses repository.BusinessRepository
}

func NewImageHandler(businesses repository.BusinessRepository) *ImageHandler {
	return &ImageHandler{businesses: businesses}
}

// BusinessImage serves the stored image bytes for a business, or 404 when
// the business does not exist or has no image.
func (h *ImageHandler) BusinessImage(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("businessId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Message: "Image not found",
		})
	}

	business, err := h.businesses.FindByID(uint(id))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Internal server error",
		})
	}
	if business == nil || len(business.Image) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Message: "Image not found",
		})
	}

	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(business.Image)
}
