package models

// HeroSlideModel is a homepage hero carousel slide.
type HeroSlideModel struct {
	Base
	Title        string   `json:"title"         gorm:"not null"`
	Subtitle     string   `json:"subtitle"`
	Image        string   `json:"image"`
	CTAText      string   `json:"cta_text"`
	CTALink      string   `json:"cta_link"`
	DisplayOrder int      `json:"display_order" gorm:"default:0;index"`
	IsActive     BoolLike `json:"is_active"     gorm:"default:true"`
}

func (HeroSlideModel) TableName() string { return "hero_slides" }
