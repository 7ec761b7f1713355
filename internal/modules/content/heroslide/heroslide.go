// Package heroslide serves the homepage hero carousel.
package heroslide

import (
	"errors"

	"github.com/agrotech/core/internal/middleware"
	"github.com/agrotech/core/internal/models"
	"github.com/agrotech/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	slides := rg.Group("/hero-slides")
	{
		slides.GET("", h.List)

		slides.POST("", authMW, h.Create)
		slides.PUT("/:id", authMW, h.Update)
		slides.DELETE("/:id", authMW, h.Delete)
	}
}

type slideDTO struct {
	Title        string           `json:"title" binding:"required"`
	Subtitle     string           `json:"subtitle"`
	Image        string           `json:"image"`
	CTAText      string           `json:"cta_text"`
	CTALink      string           `json:"cta_link"`
	DisplayOrder int              `json:"display_order"`
	IsActive     *models.BoolLike `json:"is_active"`
}

func (h *Handler) List(c *gin.Context) {
	tx := h.db.Model(&models.HeroSlideModel{}).Order("display_order ASC, created_at ASC")
	if !middleware.IsAuthenticated(c) {
		tx = tx.Where("is_active = ?", true)
	}

	var slides []models.HeroSlideModel
	if err := tx.Find(&slides).Error; err != nil {
		response.InternalError(c, "failed to list hero slides")
		return
	}
	response.OK(c, slides)
}

func (h *Handler) Create(c *gin.Context) {
	var dto slideDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	slide := models.HeroSlideModel{
		Title:        dto.Title,
		Subtitle:     dto.Subtitle,
		Image:        dto.Image,
		CTAText:      dto.CTAText,
		CTALink:      dto.CTALink,
		DisplayOrder: dto.DisplayOrder,
		IsActive:     true,
	}
	if dto.IsActive != nil {
		slide.IsActive = *dto.IsActive
	}
	if err := h.db.Create(&slide).Error; err != nil {
		response.InternalError(c, "failed to create hero slide")
		return
	}
	response.Created(c, slide)
}

func (h *Handler) Update(c *gin.Context) {
	var slide models.HeroSlideModel
	if err := h.db.First(&slide, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "hero slide not found")
			return
		}
		response.InternalError(c, "failed to load hero slide")
		return
	}

	var dto slideDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	slide.Title = dto.Title
	slide.Subtitle = dto.Subtitle
	slide.Image = dto.Image
	slide.CTAText = dto.CTAText
	slide.CTALink = dto.CTALink
	slide.DisplayOrder = dto.DisplayOrder
	if dto.IsActive != nil {
		slide.IsActive = *dto.IsActive
	}
	if err := h.db.Save(&slide).Error; err != nil {
		response.InternalError(c, "failed to update hero slide")
		return
	}
	response.OK(c, slide)
}

func (h *Handler) Delete(c *gin.Context) {
	res := h.db.Delete(&models.HeroSlideModel{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		response.InternalError(c, "failed to delete hero slide")
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c, "hero slide not found")
		return
	}
	response.Deleted(c, "hero slide deleted")
}
