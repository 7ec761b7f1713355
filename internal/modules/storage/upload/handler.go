// Package upload receives admin file uploads. Size and MIME checks run
// before any byte reaches storage; accepted files get a file reference row
// so the admin panel can list and prune them later.
package upload

import (
	"errors"

	"github.com/agrotech/core/internal/config"
	"github.com/agrotech/core/internal/models"
	"github.com/agrotech/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	db      *gorm.DB
	storage Storage
	log     *zap.Logger
}

func NewHandler(db *gorm.DB, cfg *config.AppConfig, log *zap.Logger) *Handler {
	var storage Storage
	if cfg.Upload.S3Enable {
		storage = NewS3Storage(cfg.Upload)
	} else {
		storage = NewLocalStorage(cfg)
	}
	return &Handler{db: db, storage: storage, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/upload", authMW, h.UploadImage)
	rg.POST("/upload-video", authMW, h.UploadVideo)

	files := rg.Group("/files", authMW)
	{
		files.GET("", h.ListFiles)
		files.DELETE("/:id", h.DeleteFile)
	}
}

func (h *Handler) UploadImage(c *gin.Context) {
	h.upload(c, KindImage)
}

func (h *Handler) UploadVideo(c *gin.Context) {
	h.upload(c, KindVideo)
}

func (h *Handler) upload(c *gin.Context, kind Kind) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required")
		return
	}

	mimeType, err := Validate(fh, kind)
	if err != nil {
		switch {
		case errors.Is(err, ErrTooLarge):
			response.UnprocessableEntity(c, err.Error())
		case errors.Is(err, ErrBadMIMEType):
			response.UnprocessableEntity(c, err.Error())
		default:
			response.InternalError(c, "failed to read upload")
		}
		return
	}

	fileName := buildFileName(fh.Filename)
	url, err := h.storage.Save(c.Request.Context(), fh, fileName, mimeType)
	if err != nil {
		h.log.Error("upload failed", zap.String("file", fh.Filename), zap.Error(err))
		response.InternalError(c, "failed to store upload")
		return
	}

	ref := models.FileReferenceModel{
		FileURL:  url,
		FileName: fileName,
		Kind:     string(kind),
		Status:   "pending",
	}
	if err := h.db.Create(&ref).Error; err != nil {
		h.log.Warn("file reference insert failed", zap.String("url", url), zap.Error(err))
	}

	response.Created(c, gin.H{
		"url":       url,
		"file_name": fileName,
		"mime_type": mimeType,
		"size":      fh.Size,
	})
}

func (h *Handler) ListFiles(c *gin.Context) {
	tx := h.db.Model(&models.FileReferenceModel{}).Order("created_at DESC")
	if kind := c.Query("kind"); kind != "" {
		tx = tx.Where("kind = ?", kind)
	}

	var refs []models.FileReferenceModel
	if err := tx.Find(&refs).Error; err != nil {
		response.InternalError(c, "failed to list files")
		return
	}
	response.OK(c, refs)
}

func (h *Handler) DeleteFile(c *gin.Context) {
	res := h.db.Delete(&models.FileReferenceModel{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		response.InternalError(c, "failed to delete file reference")
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c, "file not found")
		return
	}
	response.Deleted(c, "file reference deleted")
}
