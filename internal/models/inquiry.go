package models

// Inquiry statuses. Admins may set any of these at any time; there is no
// enforced transition order.
const (
	InquiryStatusPending   = "pending"
	InquiryStatusContacted = "contacted"
	InquiryStatusApproved  = "approved"
	InquiryStatusRejected  = "rejected"
)

// ValidInquiryStatus reports whether s is a member of the closed status set.
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusPending, InquiryStatusContacted, InquiryStatusApproved, InquiryStatusRejected:
		return true
	}
	return false
}

// ServiceInquiryModel is a prospective investor's inquiry about a service.
// ServiceTitle is denormalized at create time so admin listings never join.
type ServiceInquiryModel struct {
	Base
	FullName         string  `json:"full_name"         gorm:"not null"`
	Email            string  `json:"email"             gorm:"index;not null"`
	Phone            string  `json:"phone"`
	ServiceID        *string `json:"service_id"        gorm:"index"`
	ServiceTitle     string  `json:"service_title"`
	InvestmentAmount float64 `json:"investment_amount"`
	Address          string  `json:"address"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	PinCode          string  `json:"pin_code"`
	Message          string  `json:"message"           gorm:"type:text"`
	Status           string  `json:"status"            gorm:"default:pending;index"`
}

func (ServiceInquiryModel) TableName() string { return "service_inquiries" }
