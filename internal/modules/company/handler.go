package company

import (
	"github.com/agrotech/core/internal/models"
	"github.com/agrotech/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	company := rg.Group("/company")
	{
		company.GET("", h.Get)
		company.GET("/contact-info", h.GetContactInfo)
		company.GET("/social-links", h.GetSocialLinks)

		company.PUT("", authMW, h.Replace)
	}
}

// Get returns the stored record plus the derived public blocks in one call;
// the site shell renders header and footer from it.
func (h *Handler) Get(c *gin.Context) {
	info, err := h.service.Get()
	if err != nil {
		response.InternalError(c, "failed to load company info")
		return
	}
	contact, err := h.service.ContactInfo()
	if err != nil {
		response.InternalError(c, "failed to load company info")
		return
	}
	links, err := h.service.SocialLinks()
	if err != nil {
		response.InternalError(c, "failed to load company info")
		return
	}
	response.OK(c, gin.H{
		"company":      info,
		"contact_info": contact,
		"social_links": links,
	})
}

func (h *Handler) GetContactInfo(c *gin.Context) {
	contact, err := h.service.ContactInfo()
	if err != nil {
		response.InternalError(c, "failed to load contact info")
		return
	}
	response.OK(c, contact)
}

func (h *Handler) GetSocialLinks(c *gin.Context) {
	links, err := h.service.SocialLinks()
	if err != nil {
		response.InternalError(c, "failed to load social links")
		return
	}
	response.OK(c, links)
}

func (h *Handler) Replace(c *gin.Context) {
	var info models.CompanyInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.service.Replace(info); err != nil {
		response.InternalError(c, "failed to save company info")
		return
	}
	response.OKMessage(c, info, "company info updated")
}
