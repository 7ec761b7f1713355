package blog

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/agrotech/core/internal/models"
	"github.com/agrotech/core/internal/pkg/pagination"
	"github.com/agrotech/core/internal/pkg/seen"
	"github.com/agrotech/core/internal/pkg/slug"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
)

var ErrSlugTaken = errors.New("slug already exists")

// viewTTL bounds how long a session's view of a post is remembered. A
// returning reader counts again after the window lapses.
const viewTTL = 12 * time.Hour

type Service struct {
	db       *gorm.DB
	seen     seen.Store
	markdown goldmark.Markdown
}

func NewService(db *gorm.DB, seenStore seen.Store) *Service {
	return &Service{
		db:   db,
		seen: seenStore,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// List returns posts matching the filter, newest first. Anonymous callers
// only see published posts.
func (s *Service) List(f ListFilter, q pagination.Query, isAdmin bool) ([]models.BlogPostModel, *pagination.Pagination, error) {
	tx := s.db.Model(&models.BlogPostModel{}).Order("created_at DESC")

	if !isAdmin {
		tx = tx.Where("status = ?", true)
	} else if f.Status != nil {
		tx = tx.Where("status = ?", *f.Status)
	}
	if f.Category != "" {
		tx = tx.Where("category = ?", f.Category)
	}
	if f.Featured != nil {
		tx = tx.Where("featured = ?", *f.Featured)
	}
	if f.Tag != "" {
		tx = tx.Where("tags LIKE ?", "%"+f.Tag+"%")
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ?", like, like)
	}

	var posts []models.BlogPostModel
	if q.Requested {
		meta, err := pagination.Paginate(tx, q, &posts)
		if err != nil {
			return nil, nil, err
		}
		return posts, &meta, nil
	}
	return posts, nil, tx.Find(&posts).Error
}

// GetByIDOrSlug fetches a post by ID or slug. Unpublished posts are hidden
// from anonymous callers. Reading a post never changes its view count; that
// is the view endpoint's job.
func (s *Service) GetByIDOrSlug(query string, isAdmin bool) (*models.BlogPostModel, error) {
	var post models.BlogPostModel
	err := s.db.Where("id = ?", query).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.db.Where("slug = ?", query).First(&post).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !isAdmin && !post.Status.Bool() {
		return nil, nil
	}
	return &post, nil
}

// RenderHTML converts the post's markdown content to HTML for public reads.
func (s *Service) RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RecordView bumps the view count once per (post, session) pair. Returns the
// fresh count and whether this call actually counted.
func (s *Service) RecordView(ctx context.Context, query, sessionKey string) (int, bool, error) {
	var post models.BlogPostModel
	err := s.db.Where("id = ?", query).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.db.Where("slug = ?", query).First(&post).Error
	}
	if err != nil {
		return 0, false, err
	}

	first, err := s.seen.FirstSeen(ctx, "blog_view:"+post.ID, sessionKey, viewTTL)
	if err != nil {
		// A broken dedup store must not block reads; skip the count.
		return post.ViewCount, false, nil
	}
	if !first {
		return post.ViewCount, false, nil
	}

	if err := s.db.Model(&post).UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return post.ViewCount, false, err
	}
	return post.ViewCount + 1, true, nil
}

func (s *Service) Create(dto *CreateBlogDTO) (*models.BlogPostModel, error) {
	base := strings.TrimSpace(dto.Slug)
	if base == "" {
		base = dto.Title
	}
	unique, err := slug.EnsureUnique(slug.Make(base), "", s.slugExists)
	if err != nil {
		return nil, err
	}

	post := models.BlogPostModel{
		Title:         dto.Title,
		Slug:          unique,
		Excerpt:       dto.Excerpt,
		Content:       dto.Content,
		FeaturedImage: dto.FeaturedImage,
		VideoURL:      dto.VideoURL,
		VideoFile:     dto.VideoFile,
		Author:        dto.Author,
		Category:      dto.Category,
		Tags:          dto.Tags,
		Status:        true,
	}
	if dto.Status != nil {
		post.Status = *dto.Status
	}
	if dto.Featured != nil {
		post.Featured = *dto.Featured
	}
	return &post, s.db.Create(&post).Error
}

func (s *Service) Update(id string, dto *UpdateBlogDTO) (*models.BlogPostModel, error) {
	var post models.BlogPostModel
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Slug != nil {
		candidate := slug.Make(*dto.Slug)
		if candidate != "" && candidate != post.Slug {
			taken, err := s.slugExists(candidate, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrSlugTaken
			}
			updates["slug"] = candidate
		}
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.FeaturedImage != nil {
		updates["featured_image"] = *dto.FeaturedImage
	}
	if dto.VideoURL != nil {
		updates["video_url"] = *dto.VideoURL
	}
	if dto.VideoFile != nil {
		updates["video_file"] = *dto.VideoFile
	}
	if dto.Author != nil {
		updates["author"] = *dto.Author
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
	}
	if dto.Tags != nil {
		updates["tags"] = *dto.Tags
	}
	if dto.Status != nil {
		updates["status"] = dto.Status.Bool()
	}
	if dto.Featured != nil {
		updates["featured"] = dto.Featured.Bool()
	}

	if len(updates) == 0 {
		return &post, nil
	}
	if err := s.db.Model(&post).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.BlogPostModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Service) slugExists(candidate, excludeID string) (bool, error) {
	var count int64
	tx := s.db.Model(&models.BlogPostModel{}).Where("slug = ?", candidate)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
