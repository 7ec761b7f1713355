package models

// TeamMemberModel is a person on the about page.
type TeamMemberModel struct {
	Base
	Name         string   `json:"name"          gorm:"not null"`
	Position     string   `json:"position"`
	Bio          string   `json:"bio"           gorm:"type:text"`
	Image        string   `json:"image"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	LinkedIn     string   `json:"linkedin"`
	Twitter      string   `json:"twitter"`
	Facebook     string   `json:"facebook"`
	DisplayOrder int      `json:"display_order" gorm:"default:0;index"`
	IsActive     BoolLike `json:"is_active"     gorm:"default:true"`
}

func (TeamMemberModel) TableName() string { return "team_members" }
