package contact

import (
	"errors"

	"github.com/agrotech/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	contacts := rg.Group("/contacts")
	{
		contacts.POST("", h.Create)

		contacts.GET("", authMW, h.List)
		contacts.GET("/unread-count", authMW, h.UnreadCount)
		contacts.GET("/:id", authMW, h.Get)
		contacts.DELETE("/:id", authMW, h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var dto CreateContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.service.Create(&dto)
	if err != nil {
		response.InternalError(c, "failed to submit contact message")
		return
	}
	response.Created(c, msg)
}

func (h *Handler) List(c *gin.Context) {
	messages, err := h.service.List(c.Query("status"))
	if err != nil {
		response.InternalError(c, "failed to list contact messages")
		return
	}
	response.OK(c, messages)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	count, err := h.service.UnreadCount()
	if err != nil {
		response.InternalError(c, "failed to count unread messages")
		return
	}
	response.OK(c, gin.H{"unread": count})
}

func (h *Handler) Get(c *gin.Context) {
	msg, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.InternalError(c, "failed to load contact message")
		return
	}
	if msg == nil {
		response.NotFound(c, "contact message not found")
		return
	}
	response.OK(c, msg)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "contact message not found")
			return
		}
		response.InternalError(c, "failed to delete contact message")
		return
	}
	response.Deleted(c, "contact message deleted")
}
