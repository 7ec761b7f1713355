package auth

import (
	"errors"

	"github.com/agrotech/core/internal/middleware"
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
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)

		auth.POST("/logout", authMW, h.Logout)
		auth.POST("/logout-all", authMW, h.LogoutAll)
		auth.GET("/session", authMW, h.Session)
		auth.PUT("/profile", authMW, h.UpdateProfile)
	}
}

type registerDTO struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type loginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var dto registerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.Register(dto.Username, dto.Password, dto.FullName, dto.Email)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			response.Forbidden(c, err.Error())
			return
		}
		response.InternalError(c, "failed to register")
		return
	}
	response.Created(c, user)
}

func (h *Handler) Login(c *gin.Context) {
	var dto loginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.service.Login(dto.Username, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			response.Forbidden(c, err.Error())
			return
		}
		response.InternalError(c, "failed to log in")
		return
	}
	response.OK(c, gin.H{"token": token, "user": user})
}

func (h *Handler) Logout(c *gin.Context) {
	err := h.service.Logout(middleware.CurrentUserID(c), middleware.CurrentSessionID(c))
	if err != nil {
		response.InternalError(c, "failed to log out")
		return
	}
	response.OKMessage(c, nil, "logged out")
}

func (h *Handler) LogoutAll(c *gin.Context) {
	if err := h.service.LogoutAll(middleware.CurrentUserID(c)); err != nil {
		response.InternalError(c, "failed to log out")
		return
	}
	response.OKMessage(c, nil, "all sessions revoked")
}

func (h *Handler) Session(c *gin.Context) {
	user, err := h.service.Profile(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, "failed to load profile")
		return
	}
	if user == nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, user)
}

type profileDTO struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
	Password *string `json:"password"`
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var dto profileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateProfile(middleware.CurrentUserID(c), dto.FullName, dto.Email, dto.Avatar, dto.Password)
	if err != nil {
		response.InternalError(c, "failed to update profile")
		return
	}
	if user == nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, user)
}
