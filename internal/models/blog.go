package models

// BlogPostModel is a blog article.
// Tags are kept as the comma-separated string the admin panel edits; no
// normalization into a join table happens server-side.
type BlogPostModel struct {
	Base
	Title         string   `json:"title"          gorm:"not null"`
	Slug          string   `json:"slug"           gorm:"uniqueIndex;not null"`
	Excerpt       string   `json:"excerpt"        gorm:"type:text"`
	Content       string   `json:"content"        gorm:"type:longtext"`
	FeaturedImage string   `json:"featured_image"`
	VideoURL      string   `json:"video_url"`
	VideoFile     string   `json:"video_file"`
	Author        string   `json:"author"`
	Category      string   `json:"category"       gorm:"index"`
	Tags          string   `json:"tags"`
	Status        BoolLike `json:"status"         gorm:"default:true;index"`
	Featured      BoolLike `json:"featured"       gorm:"default:false;index"`
	ViewCount     int      `json:"view_count"     gorm:"default:0"`
}

func (BlogPostModel) TableName() string { return "blog_posts" }
