package models

// TestimonialModel is a client quote. Rating is 1-5, validated at the API
// boundary.
type TestimonialModel struct {
	Base
	ClientName     string   `json:"client_name"     gorm:"not null"`
	ClientPosition string   `json:"client_position"`
	ClientCompany  string   `json:"client_company"`
	ClientImage    string   `json:"client_image"`
	Content        string   `json:"content"         gorm:"type:text"`
	Rating         int      `json:"rating"          gorm:"default:5"`
	IsActive       BoolLike `json:"is_active"       gorm:"default:true"`
}

func (TestimonialModel) TableName() string { return "testimonials" }
