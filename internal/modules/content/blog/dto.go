package blog

import "github.com/agrotech/core/internal/models"

type CreateBlogDTO struct {
	Title         string           `json:"title" binding:"required"`
	Slug          string           `json:"slug"`
	Excerpt       string           `json:"excerpt"`
	Content       string           `json:"content"`
	FeaturedImage string           `json:"featured_image"`
	VideoURL      string           `json:"video_url"`
	VideoFile     string           `json:"video_file"`
	Author        string           `json:"author"`
	Category      string           `json:"category"`
	Tags          string           `json:"tags"`
	Status        *models.BoolLike `json:"status"`
	Featured      *models.BoolLike `json:"featured"`
}

type UpdateBlogDTO struct {
	Title         *string          `json:"title"`
	Slug          *string          `json:"slug"`
	Excerpt       *string          `json:"excerpt"`
	Content       *string          `json:"content"`
	FeaturedImage *string          `json:"featured_image"`
	VideoURL      *string          `json:"video_url"`
	VideoFile     *string          `json:"video_file"`
	Author        *string          `json:"author"`
	Category      *string          `json:"category"`
	Tags          *string          `json:"tags"`
	Status        *models.BoolLike `json:"status"`
	Featured      *models.BoolLike `json:"featured"`
}

// ListFilter narrows the blog listing.
type ListFilter struct {
	Category string
	Tag      string
	Featured *bool
	Status   *bool
	Search   string
}

// BlogPostView is a post plus its markdown rendered to HTML, returned on
// public detail reads.
type BlogPostView struct {
	models.BlogPostModel
	ContentHTML string `json:"content_html"`
}
