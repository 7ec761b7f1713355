// Package testimonial manages client testimonials. Ratings are clamped to
// the 1..5 star scale at the boundary.
package testimonial

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
	testimonials := rg.Group("/testimonials")
	{
		testimonials.GET("", h.List)

		testimonials.POST("", authMW, h.Create)
		testimonials.PUT("/:id", authMW, h.Update)
		testimonials.DELETE("/:id", authMW, h.Delete)
	}
}

type testimonialDTO struct {
	ClientName     string           `json:"client_name" binding:"required"`
	ClientPosition string           `json:"client_position"`
	ClientCompany  string           `json:"client_company"`
	ClientImage    string           `json:"client_image"`
	Content        string           `json:"content" binding:"required"`
	Rating         *int             `json:"rating"`
	IsActive       *models.BoolLike `json:"is_active"`
}

func validRating(r int) bool { return r >= 1 && r <= 5 }

func (h *Handler) List(c *gin.Context) {
	tx := h.db.Model(&models.TestimonialModel{}).Order("created_at DESC")
	if !middleware.IsAuthenticated(c) {
		tx = tx.Where("is_active = ?", true)
	}

	var testimonials []models.TestimonialModel
	if err := tx.Find(&testimonials).Error; err != nil {
		response.InternalError(c, "failed to list testimonials")
		return
	}
	response.OK(c, testimonials)
}

func (h *Handler) Create(c *gin.Context) {
	var dto testimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Rating != nil && !validRating(*dto.Rating) {
		response.UnprocessableEntity(c, "rating must be between 1 and 5")
		return
	}

	t := models.TestimonialModel{
		ClientName:     dto.ClientName,
		ClientPosition: dto.ClientPosition,
		ClientCompany:  dto.ClientCompany,
		ClientImage:    dto.ClientImage,
		Content:        dto.Content,
		Rating:         5,
		IsActive:       true,
	}
	if dto.Rating != nil {
		t.Rating = *dto.Rating
	}
	if dto.IsActive != nil {
		t.IsActive = *dto.IsActive
	}
	if err := h.db.Create(&t).Error; err != nil {
		response.InternalError(c, "failed to create testimonial")
		return
	}
	response.Created(c, t)
}

func (h *Handler) Update(c *gin.Context) {
	var t models.TestimonialModel
	if err := h.db.First(&t, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "testimonial not found")
			return
		}
		response.InternalError(c, "failed to load testimonial")
		return
	}

	var dto testimonialDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if dto.Rating != nil && !validRating(*dto.Rating) {
		response.UnprocessableEntity(c, "rating must be between 1 and 5")
		return
	}

	t.ClientName = dto.ClientName
	t.ClientPosition = dto.ClientPosition
	t.ClientCompany = dto.ClientCompany
	t.ClientImage = dto.ClientImage
	t.Content = dto.Content
	if dto.Rating != nil {
		t.Rating = *dto.Rating
	}
	if dto.IsActive != nil {
		t.IsActive = *dto.IsActive
	}
	if err := h.db.Save(&t).Error; err != nil {
		response.InternalError(c, "failed to update testimonial")
		return
	}
	response.OK(c, t)
}

func (h *Handler) Delete(c *gin.Context) {
	res := h.db.Delete(&models.TestimonialModel{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		response.InternalError(c, "failed to delete testimonial")
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c, "testimonial not found")
		return
	}
	response.Deleted(c, "testimonial deleted")
}
