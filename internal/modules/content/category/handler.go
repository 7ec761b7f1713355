package category

import (
	"errors"

	"github.com/agrotech/core/internal/middleware"
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
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:query", h.Get)

		categories.POST("", authMW, h.Create)
		categories.PUT("/:query", authMW, h.Update)
		categories.DELETE("/:query", authMW, h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	// legacy single-record lookup via query params
	if q := c.Query("id"); q != "" {
		h.getByQuery(c, q)
		return
	}
	if q := c.Query("slug"); q != "" {
		h.getByQuery(c, q)
		return
	}

	list, err := h.service.List(middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, "failed to list categories")
		return
	}
	response.OK(c, list)
}

func (h *Handler) Get(c *gin.Context) {
	h.getByQuery(c, c.Param("query"))
}

func (h *Handler) getByQuery(c *gin.Context, query string) {
	cat, err := h.service.GetByIDOrSlug(query, middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, "failed to load category")
		return
	}
	if cat == nil {
		response.NotFound(c, "category not found")
		return
	}
	response.OK(c, cat)
}

func (h *Handler) Create(c *gin.Context) {
	var dto CreateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cat, err := h.service.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, "failed to create category")
		return
	}
	response.Created(c, cat)
}

func (h *Handler) Update(c *gin.Context) {
	var dto UpdateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cat, err := h.service.Update(c.Param("query"), &dto)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, "failed to update category")
		return
	}
	if cat == nil {
		response.NotFound(c, "category not found")
		return
	}
	response.OK(c, cat)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("query")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "category not found")
			return
		}
		response.InternalError(c, "failed to delete category")
		return
	}
	response.Deleted(c, "category deleted")
}
