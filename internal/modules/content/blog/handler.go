package blog

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strconv"

	"github.com/agrotech/core/internal/middleware"
	"github.com/agrotech/core/internal/pkg/pagination"
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
	blogs := rg.Group("/blogs")
	{
		blogs.GET("", h.List)
		blogs.GET("/:query", h.Get)
		blogs.POST("/:query/view", h.View)

		blogs.POST("", authMW, h.Create)
		blogs.PUT("/:query", authMW, h.Update)
		blogs.DELETE("/:query", authMW, h.Delete)
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

	filter := ListFilter{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Search:   c.Query("q"),
		Featured: parseBoolQuery(c, "featured"),
		Status:   parseBoolQuery(c, "status"),
	}

	posts, meta, err := h.service.List(filter, pagination.FromContext(c), middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, "failed to list blog posts")
		return
	}
	if meta != nil {
		response.OK(c, gin.H{"items": posts, "pagination": meta})
		return
	}
	response.OK(c, posts)
}

func (h *Handler) Get(c *gin.Context) {
	h.getByQuery(c, c.Param("query"))
}

func (h *Handler) getByQuery(c *gin.Context, query string) {
	isAdmin := middleware.IsAuthenticated(c)
	post, err := h.service.GetByIDOrSlug(query, isAdmin)
	if err != nil {
		response.InternalError(c, "failed to load blog post")
		return
	}
	if post == nil {
		response.NotFound(c, "blog post not found")
		return
	}

	// Admins edit raw markdown; public readers get rendered HTML alongside.
	if isAdmin {
		response.OK(c, post)
		return
	}
	rendered, err := h.service.RenderHTML(post.Content)
	if err != nil {
		response.InternalError(c, "failed to render blog post")
		return
	}
	response.OK(c, BlogPostView{BlogPostModel: *post, ContentHTML: rendered})
}

// View counts one read per visitor session. The client may send its own
// session key; otherwise one is derived from the caller's address.
func (h *Handler) View(c *gin.Context) {
	var body struct {
		SessionID string `json:"session_id"`
	}
	_ = c.ShouldBindJSON(&body)

	key := body.SessionID
	if key == "" {
		key = c.GetHeader("X-Session-ID")
	}
	if key == "" {
		sum := sha1.Sum([]byte(c.ClientIP() + "|" + c.Request.UserAgent()))
		key = hex.EncodeToString(sum[:])
	}

	count, counted, err := h.service.RecordView(c.Request.Context(), c.Param("query"), key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "blog post not found")
			return
		}
		response.InternalError(c, "failed to record view")
		return
	}
	response.OK(c, gin.H{"view_count": count, "counted": counted})
}

func (h *Handler) Create(c *gin.Context) {
	var dto CreateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.service.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, "failed to create blog post")
		return
	}
	response.Created(c, post)
}

func (h *Handler) Update(c *gin.Context) {
	var dto UpdateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.service.Update(c.Param("query"), &dto)
	if err != nil {
		if errors.Is(err, ErrSlugTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, "failed to update blog post")
		return
	}
	if post == nil {
		response.NotFound(c, "blog post not found")
		return
	}
	response.OK(c, post)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("query")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "blog post not found")
			return
		}
		response.InternalError(c, "failed to delete blog post")
		return
	}
	response.Deleted(c, "blog post deleted")
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
