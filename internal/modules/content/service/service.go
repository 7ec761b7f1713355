package service

import (
	"errors"
	"strings"

	"github.com/agrotech/core/internal/models"
	"github.com/agrotech/core/internal/pkg/slug"
	"gorm.io/gorm"
)

var (
	ErrSlugTaken       = errors.New("slug already exists")
	ErrInvalidCategory = errors.New("category must be one of farming, livestock, technology")
)

// CreateServiceDTO carries the admin create form. Slug is optional; when
// omitted it is derived from the title.
type CreateServiceDTO struct {
	Title          string             `json:"title" binding:"required"`
	Slug           string             `json:"slug"`
	Category       string             `json:"category" binding:"required"`
	Description    string             `json:"description"`
	Image          string             `json:"image"`
	HeaderImage    string             `json:"header_image"`
	ThumbnailImage string             `json:"thumbnail_image"`
	GalleryImages  models.StringSlice `json:"gallery_images"`
	MinInvestment  float64            `json:"min_investment"`
	MaxInvestment  float64            `json:"max_investment"`
	ROIMin         float64            `json:"roi_min"`
	ROIMax         float64            `json:"roi_max"`
	DurationMonths int                `json:"duration_months"`
	Status         *models.BoolLike   `json:"status"`
	Featured       *models.BoolLike   `json:"featured"`
}

// UpdateServiceDTO carries a partial update; nil fields are left untouched.
type UpdateServiceDTO struct {
	Title          *string             `json:"title"`
	Slug           *string             `json:"slug"`
	Category       *string             `json:"category"`
	Description    *string             `json:"description"`
	Image          *string             `json:"image"`
	HeaderImage    *string             `json:"header_image"`
	ThumbnailImage *string             `json:"thumbnail_image"`
	GalleryImages  *models.StringSlice `json:"gallery_images"`
	MinInvestment  *float64            `json:"min_investment"`
	MaxInvestment  *float64            `json:"max_investment"`
	ROIMin         *float64            `json:"roi_min"`
	ROIMax         *float64            `json:"roi_max"`
	DurationMonths *int                `json:"duration_months"`
	Status         *models.BoolLike    `json:"status"`
	Featured       *models.BoolLike    `json:"featured"`
}

// ListFilter narrows the service listing.
type ListFilter struct {
	Category string `form:"category"`
	Featured *bool  `form:"featured"`
	Status   *bool  `form:"status"`
	Search   string `form:"q"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns services matching the filter. Anonymous callers only ever
// see active services regardless of the status filter.
func (s *Service) List(f ListFilter, isAdmin bool) ([]models.ServiceModel, error) {
	tx := s.db.Model(&models.ServiceModel{}).Order("created_at DESC")

	if !isAdmin {
		tx = tx.Where("status = ?", true)
	} else if f.Status != nil {
		tx = tx.Where("status = ?", *f.Status)
	}
	if f.Category != "" {
		tx = tx.Where("category = ?", f.Category)
	}
	if f.Featured != nil {
		tx = tx.Where("featured = ?", *f.Featured)
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(category) LIKE ?", like, like)
	}

	var services []models.ServiceModel
	return services, tx.Find(&services).Error
}

// GetByIDOrSlug looks a service up by ID first, then by slug. Inactive
// services are hidden from anonymous callers (nil, nil).
func (s *Service) GetByIDOrSlug(query string, isAdmin bool) (*models.ServiceModel, error) {
	var svc models.ServiceModel
	err := s.db.Where("id = ?", query).First(&svc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.db.Where("slug = ?", query).First(&svc).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !isAdmin && !svc.Status.Bool() {
		return nil, nil
	}
	return &svc, nil
}

func (s *Service) Create(dto *CreateServiceDTO) (*models.ServiceModel, error) {
	if !models.ValidServiceCategory(dto.Category) {
		return nil, ErrInvalidCategory
	}

	base := strings.TrimSpace(dto.Slug)
	if base == "" {
		base = slug.Make(dto.Title)
	} else {
		base = slug.Make(base)
	}
	unique, err := slug.EnsureUnique(base, "", s.slugExists)
	if err != nil {
		return nil, err
	}

	svc := models.ServiceModel{
		Title:          dto.Title,
		Slug:           unique,
		Category:       dto.Category,
		Description:    dto.Description,
		Image:          dto.Image,
		HeaderImage:    dto.HeaderImage,
		ThumbnailImage: dto.ThumbnailImage,
		GalleryImages:  dto.GalleryImages,
		MinInvestment:  dto.MinInvestment,
		MaxInvestment:  dto.MaxInvestment,
		ROIMin:         dto.ROIMin,
		ROIMax:         dto.ROIMax,
		DurationMonths: dto.DurationMonths,
		Status:         true,
	}
	if dto.Status != nil {
		svc.Status = *dto.Status
	}
	if dto.Featured != nil {
		svc.Featured = *dto.Featured
	}
	return &svc, s.db.Create(&svc).Error
}

func (s *Service) Update(id string, dto *UpdateServiceDTO) (*models.ServiceModel, error) {
	var svc models.ServiceModel
	if err := s.db.First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Slug != nil {
		candidate := slug.Make(*dto.Slug)
		if candidate == "" && dto.Title != nil {
			candidate = slug.Make(*dto.Title)
		}
		// an empty candidate would wipe the slug; keep the existing one
		if candidate != "" && candidate != svc.Slug {
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
	if dto.Category != nil {
		if !models.ValidServiceCategory(*dto.Category) {
			return nil, ErrInvalidCategory
		}
		updates["category"] = *dto.Category
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Image != nil {
		updates["image"] = *dto.Image
	}
	if dto.HeaderImage != nil {
		updates["header_image"] = *dto.HeaderImage
	}
	if dto.ThumbnailImage != nil {
		updates["thumbnail_image"] = *dto.ThumbnailImage
	}
	if dto.GalleryImages != nil {
		updates["gallery_images"] = *dto.GalleryImages
	}
	if dto.MinInvestment != nil {
		updates["min_investment"] = *dto.MinInvestment
	}
	if dto.MaxInvestment != nil {
		updates["max_investment"] = *dto.MaxInvestment
	}
	if dto.ROIMin != nil {
		updates["roi_min"] = *dto.ROIMin
	}
	if dto.ROIMax != nil {
		updates["roi_max"] = *dto.ROIMax
	}
	if dto.DurationMonths != nil {
		updates["duration_months"] = *dto.DurationMonths
	}
	if dto.Status != nil {
		updates["status"] = dto.Status.Bool()
	}
	if dto.Featured != nil {
		updates["featured"] = dto.Featured.Bool()
	}

	if len(updates) == 0 {
		return &svc, nil
	}
	if err := s.db.Model(&svc).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// Delete removes a service permanently.
func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.ServiceModel{}, "id = ?", id)
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
	tx := s.db.Model(&models.ServiceModel{}).Where("slug = ?", candidate)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
