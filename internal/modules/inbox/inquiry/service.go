package inquiry

import (
	"errors"

	"github.com/agrotech/core/internal/models"
	"github.com/agrotech/core/internal/modules/inbox/joinflow"
	"gorm.io/gorm"
)

var ErrInvalidStatus = errors.New("status must be one of pending, contacted, approved, rejected")

type CreateInquiryDTO struct {
	FullName         string  `json:"full_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Phone            string  `json:"phone"`
	ServiceID        string  `json:"service_id"`
	InvestmentAmount float64 `json:"investment_amount"`
	Address          string  `json:"address"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	PinCode          string  `json:"pin_code"`
	Message          string  `json:"message"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create stores a direct inquiry, always pending. If the inquiry names a
// service the title is denormalized onto the row so admin listings never
// join; an unknown service ID is kept as plain text context rather than
// rejected.
func (s *Service) Create(dto *CreateInquiryDTO) (*models.ServiceInquiryModel, error) {
	inq := models.ServiceInquiryModel{
		FullName:         dto.FullName,
		Email:            dto.Email,
		Phone:            dto.Phone,
		InvestmentAmount: dto.InvestmentAmount,
		Address:          dto.Address,
		City:             dto.City,
		State:            dto.State,
		PinCode:          dto.PinCode,
		Message:          dto.Message,
		Status:           models.InquiryStatusPending,
	}
	if dto.ServiceID != "" {
		inq.ServiceID = &dto.ServiceID
		var svc models.ServiceModel
		if err := s.db.Select("title").First(&svc, "id = ?", dto.ServiceID).Error; err == nil {
			inq.ServiceTitle = svc.Title
		}
	}
	return &inq, s.db.Create(&inq).Error
}

// SubmitJoin validates a completed join form by replaying the flow's steps,
// then stores the result as a pending inquiry.
func (s *Service) SubmitJoin(f joinflow.Form) (*models.ServiceInquiryModel, error) {
	if err := joinflow.Complete(f); err != nil {
		return nil, err
	}
	return s.Create(&CreateInquiryDTO{
		FullName:         f.FullName,
		Email:            f.Email,
		Phone:            f.Phone,
		ServiceID:        f.ServiceID,
		InvestmentAmount: f.InvestmentAmount,
		Address:          f.Address,
		City:             f.City,
		State:            f.State,
		PinCode:          f.PinCode,
		Message:          f.Message,
	})
}

// List returns inquiries newest first, optionally filtered by status.
func (s *Service) List(status string) ([]models.ServiceInquiryModel, error) {
	if status != "" && !models.ValidInquiryStatus(status) {
		return nil, ErrInvalidStatus
	}
	tx := s.db.Model(&models.ServiceInquiryModel{}).Order("created_at DESC")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var inquiries []models.ServiceInquiryModel
	return inquiries, tx.Find(&inquiries).Error
}

func (s *Service) Get(id string) (*models.ServiceInquiryModel, error) {
	var inq models.ServiceInquiryModel
	if err := s.db.First(&inq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inq, nil
}

// SetStatus assigns any member of the closed status set. There is no
// enforced order between statuses; admins move inquiries freely.
func (s *Service) SetStatus(id, status string) (*models.ServiceInquiryModel, error) {
	if !models.ValidInquiryStatus(status) {
		return nil, ErrInvalidStatus
	}

	var inq models.ServiceInquiryModel
	if err := s.db.First(&inq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := s.db.Model(&inq).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &inq, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.ServiceInquiryModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
