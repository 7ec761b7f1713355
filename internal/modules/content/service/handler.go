package service

import (
	"errors"
	"strconv"

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
	services := rg.Group("/services")
	{
		services.GET("", h.List)
		services.GET("/:query", h.Get)

		services.POST("", authMW, h.Create)
		services.PUT("/:query", authMW, h.Update)
		services.DELETE("/:query", authMW, h.Delete)
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

	var filter ListFilter
	filter.Category = c.Query("category")
	filter.Search = c.Query("q")
	filter.Featured = parseBoolQuery(c, "featured")
	filter.Status = parseBoolQuery(c, "status")

	list, err := h.service.List(filter, middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, "failed to list services")
		return
	}
	response.OK(c, list)
}

func (h *Handler) Get(c *gin.Context) {
	h.getByQuery(c, c.Param("query"))
}

func (h *Handler) getByQuery(c *gin.Context, query string) {
	svc, err := h.service.GetByIDOrSlug(query, middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, "failed to load service")
		return
	}
	if svc == nil {
		response.NotFound(c, "service not found")
		return
	}
	response.OK(c, svc)
}

func (h *Handler) Create(c *gin.Context) {
	var dto CreateServiceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	svc, err := h.service.Create(&dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCategory):
			response.UnprocessableEntity(c, err.Error())
		case errors.Is(err, ErrSlugTaken):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, "failed to create service")
		}
		return
	}
	response.Created(c, svc)
}

func (h *Handler) Update(c *gin.Context) {
	var dto UpdateServiceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	svc, err := h.service.Update(c.Param("query"), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCategory):
			response.UnprocessableEntity(c, err.Error())
		case errors.Is(err, ErrSlugTaken):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c, "failed to update service")
		}
		return
	}
	if svc == nil {
		response.NotFound(c, "service not found")
		return
	}
	response.OK(c, svc)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("query")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "service not found")
			return
		}
		response.InternalError(c, "failed to delete service")
		return
	}
	response.Deleted(c, "service deleted")
}

func parseBoolQuery(c *gin.Context, key string) *bool {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
