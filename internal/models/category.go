package models

// CategoryModel is a content category shown on the public site.
type CategoryModel struct {
	Base
	Name        string   `json:"name"        gorm:"uniqueIndex;not null"`
	Slug        string   `json:"slug"        gorm:"uniqueIndex;not null"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Image       string   `json:"image"`
	IsActive    BoolLike `json:"is_active"   gorm:"default:true"`
}

func (CategoryModel) TableName() string { return "categories" }
