package models

// Contact message statuses.
const (
	ContactStatusUnread = "unread"
	ContactStatusRead   = "read"
)

// ContactMessageModel is a message submitted through the public contact form.
// Status moves unread → read on first admin view and never back.
type ContactMessageModel struct {
	Base
	Name    string `json:"name"    gorm:"not null"`
	Email   string `json:"email"   gorm:"index;not null"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" gorm:"type:text"`
	Status  string `json:"status"  gorm:"default:unread;index"`
}

func (ContactMessageModel) TableName() string { return "contact_messages" }
