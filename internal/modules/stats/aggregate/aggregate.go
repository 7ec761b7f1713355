// Package aggregate serves the one-call homepage payload. Each slice
// degrades independently: a failing query yields an empty slice for that
// section rather than failing the whole response.
package aggregate

import (
	"github.com/agrotech/core/internal/models"
	"github.com/agrotech/core/internal/modules/company"
	"github.com/agrotech/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	featuredServicesLimit = 6
	latestBlogsLimit      = 3
)

type Handler struct {
	db      *gorm.DB
	company *company.Service
	log     *zap.Logger
}

func NewHandler(db *gorm.DB, companyService *company.Service, log *zap.Logger) *Handler {
	return &Handler{db: db, company: companyService, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, _ gin.HandlerFunc) {
	rg.GET("/aggregate", h.Get)
}

func (h *Handler) Get(c *gin.Context) {
	payload := gin.H{}

	contact, err := h.company.ContactInfo()
	if err != nil {
		h.log.Warn("aggregate: contact info failed", zap.Error(err))
	}
	payload["contact_info"] = contact

	links, err := h.company.SocialLinks()
	if err != nil {
		h.log.Warn("aggregate: social links failed", zap.Error(err))
		links = map[string]string{}
	}
	payload["social_links"] = links

	stats := []models.StatisticModel{}
	if err := h.db.Order("created_at ASC").Find(&stats).Error; err != nil {
		h.log.Warn("aggregate: statistics failed", zap.Error(err))
	}
	payload["statistics"] = stats

	services := []models.ServiceModel{}
	if err := h.db.Where("status = ? AND featured = ?", true, true).
		Order("created_at DESC").Limit(featuredServicesLimit).
		Find(&services).Error; err != nil {
		h.log.Warn("aggregate: featured services failed", zap.Error(err))
	}
	payload["featured_services"] = services

	posts := []models.BlogPostModel{}
	if err := h.db.Where("status = ?", true).
		Order("created_at DESC").Limit(latestBlogsLimit).
		Find(&posts).Error; err != nil {
		h.log.Warn("aggregate: latest posts failed", zap.Error(err))
	}
	payload["latest_posts"] = posts

	response.OK(c, payload)
}
