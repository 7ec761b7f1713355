package category

import (
	"errors"
	"strings"

	"github.com/agrotech/core/internal/models"
	"github.com/agrotech/core/internal/pkg/slug"
	"gorm.io/gorm"
)

var ErrSlugTaken = errors.New("slug already exists")

type CreateCategoryDTO struct {
	Name        string           `json:"name" binding:"required"`
	Slug        string           `json:"slug"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Image       string           `json:"image"`
	IsActive    *models.BoolLike `json:"is_active"`
}

type UpdateCategoryDTO struct {
	Name        *string          `json:"name"`
	Slug        *string          `json:"slug"`
	Description *string          `json:"description"`
	Icon        *string          `json:"icon"`
	Image       *string          `json:"image"`
	IsActive    *models.BoolLike `json:"is_active"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(isAdmin bool) ([]models.CategoryModel, error) {
	tx := s.db.Model(&models.CategoryModel{}).Order("name ASC")
	if !isAdmin {
		tx = tx.Where("is_active = ?", true)
	}
	var categories []models.CategoryModel
	return categories, tx.Find(&categories).Error
}

func (s *Service) GetByIDOrSlug(query string, isAdmin bool) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	err := s.db.Where("id = ?", query).First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.db.Where("slug = ?", query).First(&cat).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !isAdmin && !cat.IsActive.Bool() {
		return nil, nil
	}
	return &cat, nil
}

func (s *Service) Create(dto *CreateCategoryDTO) (*models.CategoryModel, error) {
	base := strings.TrimSpace(dto.Slug)
	if base == "" {
		base = dto.Name
	}
	unique, err := slug.EnsureUnique(slug.Make(base), "", s.slugExists)
	if err != nil {
		return nil, err
	}

	cat := models.CategoryModel{
		Name:        dto.Name,
		Slug:        unique,
		Description: dto.Description,
		Icon:        dto.Icon,
		Image:       dto.Image,
		IsActive:    true,
	}
	if dto.IsActive != nil {
		cat.IsActive = *dto.IsActive
	}
	return &cat, s.db.Create(&cat).Error
}

func (s *Service) Update(id string, dto *UpdateCategoryDTO) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Slug != nil {
		candidate := slug.Make(*dto.Slug)
		if candidate != "" && candidate != cat.Slug {
			taken, err := s.slugExists(candidate, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrSlugTaken
			}
			updates["slug"] = candidate
		}
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Icon != nil {
		updates["icon"] = *dto.Icon
	}
	if dto.Image != nil {
		updates["image"] = *dto.Image
	}
	if dto.IsActive != nil {
		updates["is_active"] = dto.IsActive.Bool()
	}

	if len(updates) == 0 {
		return &cat, nil
	}
	if err := s.db.Model(&cat).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.CategoryModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Service) slugExists(candidate, excludeID string) (bool, error) {
	var count int64
	tx := s.db.Model(&models.CategoryModel{}).Where("slug = ?", candidate)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
