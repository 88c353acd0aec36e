package services

import (
	"log/slog"
	"strings"

	"github.com/localsearch/backend/internal/models"
	"github.com/localsearch/backend/internal/repository"
)

// SearchService lists categories and runs free-text business queries
// against the catalog store.
type SearchService struct {
	categories repository.CategoryRepository
	businesses repository.BusinessRepository
}

func NewSearchService(categories repository.CategoryRepository, businesses repository.BusinessRepository) *SearchService {
	return &SearchService{categories: categories, businesses: businesses}
}

func (s *SearchService) Categories() ([]models.Category, error) {
	return s.categories.All()
}

// Search returns all businesses for a blank query, otherwise the LIKE
// matches on name, description and category name. The city parameter is
// part of the public contract but is not applied as a filter.
func (s *SearchService) Search(query, city string) ([]models.Business, error) {
	if city != "" {
		slog.Debug("city filter ignored", "city", city)
	}
	if strings.TrimSpace(query) == "" {
		return s.businesses.All()
	}
	return s.businesses.Search(query)
}
