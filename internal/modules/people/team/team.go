// Package team manages team member profiles shown on the about page.
package team

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
	team := rg.Group("/team")
	{
		team.GET("", h.List)
		team.GET("/:id", h.Get)

		team.POST("", authMW, h.Create)
		team.PUT("/:id", authMW, h.Update)
		team.DELETE("/:id", authMW, h.Delete)
	}
}

type memberDTO struct {
	Name         string           `json:"name" binding:"required"`
	Position     string           `json:"position"`
	Bio          string           `json:"bio"`
	Image        string           `json:"image"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	LinkedIn     string           `json:"linkedin"`
	Twitter      string           `json:"twitter"`
	Facebook     string           `json:"facebook"`
	DisplayOrder int              `json:"display_order"`
	IsActive     *models.BoolLike `json:"is_active"`
}

func (h *Handler) List(c *gin.Context) {
	tx := h.db.Model(&models.TeamMemberModel{}).Order("display_order ASC, created_at ASC")
	if !middleware.IsAuthenticated(c) {
		tx = tx.Where("is_active = ?", true)
	}

	var members []models.TeamMemberModel
	if err := tx.Find(&members).Error; err != nil {
		response.InternalError(c, "failed to list team members")
		return
	}
	response.OK(c, members)
}

func (h *Handler) Get(c *gin.Context) {
	var member models.TeamMemberModel
	if err := h.db.First(&member, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "team member not found")
			return
		}
		response.InternalError(c, "failed to load team member")
		return
	}
	if !middleware.IsAuthenticated(c) && !member.IsActive.Bool() {
		response.NotFound(c, "team member not found")
		return
	}
	response.OK(c, member)
}

func (h *Handler) Create(c *gin.Context) {
	var dto memberDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member := models.TeamMemberModel{
		Name:         dto.Name,
		Position:     dto.Position,
		Bio:          dto.Bio,
		Image:        dto.Image,
		Email:        dto.Email,
		Phone:        dto.Phone,
		LinkedIn:     dto.LinkedIn,
		Twitter:      dto.Twitter,
		Facebook:     dto.Facebook,
		DisplayOrder: dto.DisplayOrder,
		IsActive:     true,
	}
	if dto.IsActive != nil {
		member.IsActive = *dto.IsActive
	}
	if err := h.db.Create(&member).Error; err != nil {
		response.InternalError(c, "failed to create team member")
		return
	}
	response.Created(c, member)
}

func (h *Handler) Update(c *gin.Context) {
	var member models.TeamMemberModel
	if err := h.db.First(&member, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "team member not found")
			return
		}
		response.InternalError(c, "failed to load team member")
		return
	}

	var dto memberDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member.Name = dto.Name
	member.Position = dto.Position
	member.Bio = dto.Bio
	member.Image = dto.Image
	member.Email = dto.Email
	member.Phone = dto.Phone
	member.LinkedIn = dto.LinkedIn
	member.Twitter = dto.Twitter
	member.Facebook = dto.Facebook
	member.DisplayOrder = dto.DisplayOrder
	if dto.IsActive != nil {
		member.IsActive = *dto.IsActive
	}
	if err := h.db.Save(&member).Error; err != nil {
		response.InternalError(c, "failed to update team member")
		return
	}
	response.OK(c, member)
}

func (h *Handler) Delete(c *gin.Context) {
	res := h.db.Delete(&models.TeamMemberModel{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		response.InternalError(c, "failed to delete team member")
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c, "team member not found")
		return
	}
	response.Deleted(c, "team member deleted")
}
