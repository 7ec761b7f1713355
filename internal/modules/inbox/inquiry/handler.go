package inquiry

import (
	"errors"

	"github.com/agrotech/core/internal/modules/inbox/joinflow"
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
	inquiries := rg.Group("/inquiries")
	{
		inquiries.POST("", h.Create)
		inquiries.POST("/join", h.SubmitJoin)

		inquiries.GET("", authMW, h.List)
		inquiries.GET("/:id", authMW, h.Get)
		inquiries.PATCH("/:id/status", authMW, h.SetStatus)
		inquiries.DELETE("/:id", authMW, h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var dto CreateInquiryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	inq, err := h.service.Create(&dto)
	if err != nil {
		response.InternalError(c, "failed to submit inquiry")
		return
	}
	response.Created(c, inq)
}

func (h *Handler) SubmitJoin(c *gin.Context) {
	var form joinflow.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	inq, err := h.service.SubmitJoin(form)
	if err != nil {
		var verr *joinflow.ValidationError
		if errors.As(err, &verr) {
			response.UnprocessableEntity(c, verr.Error())
			return
		}
		response.InternalError(c, "failed to submit join request")
		return
	}
	response.Created(c, inq)
}

func (h *Handler) List(c *gin.Context) {
	inquiries, err := h.service.List(c.Query("status"))
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to list inquiries")
		return
	}
	response.OK(c, inquiries)
}

func (h *Handler) Get(c *gin.Context) {
	inq, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.InternalError(c, "failed to load inquiry")
		return
	}
	if inq == nil {
		response.NotFound(c, "inquiry not found")
		return
	}
	response.OK(c, inq)
}

func (h *Handler) SetStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	inq, err := h.service.SetStatus(c.Param("id"), body.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, "failed to update inquiry status")
		return
	}
	if inq == nil {
		response.NotFound(c, "inquiry not found")
		return
	}
	response.OK(c, inq)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "inquiry not found")
			return
		}
		response.InternalError(c, "failed to delete inquiry")
		return
	}
	response.Deleted(c, "inquiry deleted")
}
