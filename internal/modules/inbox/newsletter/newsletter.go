// Package newsletter manages mailing list subscriptions. Subscribing an
// address twice reactivates the existing row instead of erroring, so the
// public form stays idempotent.
package newsletter

import (
	"errors"
	"strings"

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
	newsletter := rg.Group("/newsletter")
	{
		newsletter.POST("/subscribe", h.Subscribe)
		newsletter.POST("/unsubscribe", h.Unsubscribe)
		newsletter.DELETE("/unsubscribe", h.Unsubscribe)

		newsletter.GET("/subscribers", authMW, h.List)
		newsletter.DELETE("/subscribers/:id", authMW, h.Delete)
	}
}

type subscribeDTO struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *Handler) Subscribe(c *gin.Context) {
	var dto subscribeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var sub models.NewsletterSubscriberModel
	err := h.db.First(&sub, "email = ?", email).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub = models.NewsletterSubscriberModel{Email: email, IsActive: true}
		if err := h.db.Create(&sub).Error; err != nil {
			response.InternalError(c, "failed to subscribe")
			return
		}
	case err != nil:
		response.InternalError(c, "failed to subscribe")
		return
	default:
		if !sub.IsActive.Bool() {
			if err := h.db.Model(&sub).Update("is_active", true).Error; err != nil {
				response.InternalError(c, "failed to subscribe")
				return
			}
			sub.IsActive = true
		}
	}
	response.OKMessage(c, sub, "subscribed")
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	var dto subscribeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	res := h.db.Model(&models.NewsletterSubscriberModel{}).
		Where("email = ?", email).
		Update("is_active", false)
	if res.Error != nil {
		response.InternalError(c, "failed to unsubscribe")
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c, "subscriber not found")
		return
	}
	response.OKMessage(c, nil, "unsubscribed")
}

func (h *Handler) List(c *gin.Context) {
	tx := h.db.Model(&models.NewsletterSubscriberModel{}).Order("created_at DESC")
	if active, ok := c.GetQuery("active"); ok {
		tx = tx.Where("is_active = ?", active == "true" || active == "1")
	}

	var subs []models.NewsletterSubscriberModel
	if err := tx.Find(&subs).Error; err != nil {
		response.InternalError(c, "failed to list subscribers")
		return
	}
	response.OK(c, subs)
}

func (h *Handler) Delete(c *gin.Context) {
	res := h.db.Delete(&models.NewsletterSubscriberModel{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		response.InternalError(c, "failed to delete subscriber")
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c, "subscriber not found")
		return
	}
	response.Deleted(c, "subscriber deleted")
}
