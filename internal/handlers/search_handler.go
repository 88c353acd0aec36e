package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/localsearch/backend/internal/dto"
	"github.com/localsearch/backend/internal/services"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

func (h *SearchHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.searchService.Categories()
	if err != nil {
		slog.Error("failed to list categories", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Internal server error",
		})
	}
	return c.JSON(categories)
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query")
	city := c.Query("city")

	businesses, err := h.searchService.Search(query, city)
	if err != nil {
		slog.Error("business search failed", "error", err, "query", query)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Internal server error",
		})
	}
	return c.JSON(businesses)
}
