package models

// NewsletterSubscriberModel is an email captured by the footer signup.
type NewsletterSubscriberModel struct {
	Base
	Email    string   `json:"email"     gorm:"uniqueIndex;not null"`
	IsActive BoolLike `json:"is_active" gorm:"default:true"`
}

func (NewsletterSubscriberModel) TableName() string { return "newsletter_subscribers" }
