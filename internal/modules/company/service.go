package company

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/agrotech/core/internal/models"
	"gorm.io/gorm"
)

const optionKey = "company_info"

// Fallbacks used when the stored record leaves contact fields empty, so the
// public site never renders a blank footer.
const (
	defaultCompanyName  = "AgroTech Solutions"
	defaultPhone        = "+91 9876543210"
	defaultEmail        = "info@agrotech.com"
	defaultWorkingHours = "Mon - Sat: 9:00 AM - 6:00 PM"
	defaultCountry      = "India"
)

// Service owns the company info singleton. The record lives as JSON in the
// options table; reads go through an in-process cache invalidated on write.
type Service struct {
	db *gorm.DB

	mu     sync.RWMutex
	cached *models.CompanyInfo
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the stored record, or a zero value when none has been saved.
func (s *Service) Get() (models.CompanyInfo, error) {
	s.mu.RLock()
	if s.cached != nil {
		info := *s.cached
		s.mu.RUnlock()
		return info, nil
	}
	s.mu.RUnlock()

	var opt models.OptionModel
	err := s.db.First(&opt, "name = ?", optionKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CompanyInfo{}, nil
	}
	if err != nil {
		return models.CompanyInfo{}, err
	}

	var info models.CompanyInfo
	if err := json.Unmarshal([]byte(opt.Value), &info); err != nil {
		return models.CompanyInfo{}, err
	}

	s.mu.Lock()
	s.cached = &info
	s.mu.Unlock()
	return info, nil
}

// Replace overwrites the whole record. The admin settings screen submits the
// full object; there is no partial update.
func (s *Service) Replace(info models.CompanyInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return err
	}

	var opt models.OptionModel
	err = s.db.First(&opt, "name = ?", optionKey).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		opt = models.OptionModel{Name: optionKey, Value: string(raw)}
		err = s.db.Create(&opt).Error
	case err != nil:
	default:
		err = s.db.Model(&opt).Update("value", string(raw)).Error
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cached = &info
	s.mu.Unlock()
	return nil
}

// Invalidate drops the cache; the next Get rereads from the database.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// ContactInfo is the public footer/contact block with fallbacks applied.
type ContactInfo struct {
	CompanyName  string `json:"company_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AltPhone     string `json:"alt_phone,omitempty"`
	WorkingHours string `json:"working_hours"`
	Address      string `json:"address"`
	Country      string `json:"country"`
}

// ContactInfo derives the public contact block from the stored record,
// substituting defaults for any empty field.
func (s *Service) ContactInfo() (ContactInfo, error) {
	info, err := s.Get()
	if err != nil {
		return ContactInfo{}, err
	}

	ci := ContactInfo{
		CompanyName:  orDefault(info.CompanyName, defaultCompanyName),
		Email:        orDefault(info.Email, defaultEmail),
		Phone:        orDefault(info.Phone, defaultPhone),
		AltPhone:     info.AltPhone,
		WorkingHours: orDefault(info.WorkingHours, defaultWorkingHours),
		Country:      orDefault(info.Country, defaultCountry),
	}

	parts := make([]string, 0, 4)
	for _, p := range []string{info.AddressLine1, info.AddressLine2, info.City, info.State} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if info.PinCode != "" {
		parts = append(parts, info.PinCode)
	}
	ci.Address = strings.Join(parts, ", ")
	return ci, nil
}

// SocialLinks returns only the networks that have a URL set, plus a WhatsApp
// link derived from the phone number.
func (s *Service) SocialLinks() (map[string]string, error) {
	info, err := s.Get()
	if err != nil {
		return nil, err
	}

	links := map[string]string{}
	for name, url := range map[string]string{
		"facebook":  info.Facebook,
		"twitter":   info.Twitter,
		"instagram": info.Instagram,
		"linkedin":  info.LinkedIn,
		"youtube":   info.YouTube,
	} {
		if strings.TrimSpace(url) != "" {
			links[name] = url
		}
	}

	phone := orDefault(info.Phone, defaultPhone)
	if digits := digitsOnly(phone); digits != "" {
		links["whatsapp"] = "https://wa.me/" + digits
	}
	return links, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
