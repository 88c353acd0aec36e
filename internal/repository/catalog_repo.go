package repository

import (
	"errors"

	"github.com/localsearch/backend/internal/models"
	"gorm.io/gorm"
)

// CategoryRepository is the category side of the catalog store.
type CategoryRepository interface {
	All() ([]models.Category, error)
	Create(c *models.Category) error
	Count() (int64, error)
}

// BusinessRepository is the business side of the catalog store.
type BusinessRepository interface {
	All() ([]models.Business, error)
	Search(query string) ([]models.Business, error)
	FindByID(id uint) (*models.Business, error)
	Create(b *models.Business) error
	Count() (int64, error)
}

type CategoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) All() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *CategoryRepo) Create(c *models.Category) error {
	return r.db.Create(c).Error
}

func (r *CategoryRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Count(&count).Error
	return count, err
}

type BusinessRepo struct{ db *gorm.DB }

func NewBusinessRepo(db *gorm.DB) *BusinessRepo { return &BusinessRepo{db: db} }

func (r *BusinessRepo) All() ([]models.Business, error) {
	var businesses []models.Business
	err := r.db.Preload("Category").Find(&businesses).Error
	return businesses, err
}

// Search matches name, description or category name against the raw query
// wrapped in %...%. The query is embedded unescaped so LIKE wildcards in the
// input keep their meaning; matching is case-sensitive.
func (r *BusinessRepo) Search(query string) ([]models.Business, error) {
	pattern := "%" + query + "%"
	var businesses []models.Business
	err := r.db.
		Joins("JOIN categories ON categories.id = businesses.category_id").
		Where("businesses.name LIKE ? OR businesses.description LIKE ? OR categories.name LIKE ?",
			pattern, pattern, pattern).
		Preload("Category").
		Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepo) FindByID(id uint) (*models.Business, error) {
	var b models.Business
	err := r.db.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BusinessRepo) Create(b *models.Business) error {
	return r.db.Create(b).Error
}

func (r *BusinessRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Business{}).Count(&count).Error
	return count, err
}
