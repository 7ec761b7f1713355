// Package statistic manages the homepage counter figures.
package statistic

import (
	"errors"

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
	stats := rg.Group("/statistics")
	{
		stats.GET("", h.List)

		stats.POST("", authMW, h.Create)
		stats.PUT("/:id", authMW, h.Update)
		stats.DELETE("/:id", authMW, h.Delete)
	}
}

type statisticDTO struct {
	Label  string `json:"label" binding:"required"`
	Value  string `json:"value" binding:"required"`
	Suffix string `json:"suffix"`
	Icon   string `json:"icon"`
}

func (h *Handler) List(c *gin.Context) {
	var stats []models.StatisticModel
	if err := h.db.Order("created_at ASC").Find(&stats).Error; err != nil {
		response.InternalError(c, "failed to list statistics")
		return
	}
	response.OK(c, stats)
}

func (h *Handler) Create(c *gin.Context) {
	var dto statisticDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	stat := models.StatisticModel{
		Label:  dto.Label,
		Value:  dto.Value,
		Suffix: dto.Suffix,
		Icon:   dto.Icon,
	}
	if err := h.db.Create(&stat).Error; err != nil {
		response.InternalError(c, "failed to create statistic")
		return
	}
	response.Created(c, stat)
}

func (h *Handler) Update(c *gin.Context) {
	var stat models.StatisticModel
	if err := h.db.First(&stat, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "statistic not found")
			return
		}
		response.InternalError(c, "failed to load statistic")
		return
	}

	var dto statisticDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	stat.Label = dto.Label
	stat.Value = dto.Value
	stat.Suffix = dto.Suffix
	stat.Icon = dto.Icon
	if err := h.db.Save(&stat).Error; err != nil {
		response.InternalError(c, "failed to update statistic")
		return
	}
	response.OK(c, stat)
}

func (h *Handler) Delete(c *gin.Context) {
	res := h.db.Delete(&models.StatisticModel{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		response.InternalError(c, "failed to delete statistic")
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c, "statistic not found")
		return
	}
	response.Deleted(c, "statistic deleted")
}
