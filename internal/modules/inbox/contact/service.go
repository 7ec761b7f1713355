package contact

import (
	"errors"

	"github.com/agrotech/core/internal/models"
	"gorm.io/gorm"
)

type CreateContactDTO struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create stores a public contact submission. Messages always start unread.
func (s *Service) Create(dto *CreateContactDTO) (*models.ContactMessageModel, error) {
	msg := models.ContactMessageModel{
		Name:    dto.Name,
		Email:   dto.Email,
		Phone:   dto.Phone,
		Subject: dto.Subject,
		Message: dto.Message,
		Status:  models.ContactStatusUnread,
	}
	return &msg, s.db.Create(&msg).Error
}

// List returns messages newest first, optionally filtered by status.
func (s *Service) List(status string) ([]models.ContactMessageModel, error) {
	tx := s.db.Model(&models.ContactMessageModel{}).Order("created_at DESC")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var messages []models.ContactMessageModel
	return messages, tx.Find(&messages).Error
}

// Get fetches one message and flips it unread to read. The flip is a
// conditional update so concurrent reads mark it exactly once and a read
// message is never reverted.
func (s *Service) Get(id string) (*models.ContactMessageModel, error) {
	var msg models.ContactMessageModel
	if err := s.db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if msg.Status == models.ContactStatusUnread {
		res := s.db.Model(&models.ContactMessageModel{}).
			Where("id = ? AND status = ?", id, models.ContactStatusUnread).
			Update("status", models.ContactStatusRead)
		if res.Error != nil {
			return nil, res.Error
		}
		msg.Status = models.ContactStatusRead
	}
	return &msg, nil
}

// UnreadCount powers the admin inbox badge.
func (s *Service) UnreadCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.ContactMessageModel{}).
		Where("status = ?", models.ContactStatusUnread).
		Count(&count).Error
	return count, err
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.ContactMessageModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
