package models

// CompanyInfo is the singleton company record. It is persisted as a JSON
// blob in the options table and replaced wholesale by the admin settings
// screen (full-object PUT, no partial patch).
type CompanyInfo struct {
	CompanyName        string `json:"company_name"`
	Tagline            string `json:"tagline"`
	Description        string `json:"description"`
	Mission            string `json:"mission"`
	Vision             string `json:"vision"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	AltPhone           string `json:"alt_phone"`
	WorkingHours       string `json:"working_hours"`
	AddressLine1       string `json:"address_line1"`
	AddressLine2       string `json:"address_line2"`
	City               string `json:"city"`
	State              string `json:"state"`
	PinCode            string `json:"pin_code"`
	Country            string `json:"country"`
	Facebook           string `json:"facebook"`
	Twitter            string `json:"twitter"`
	Instagram          string `json:"instagram"`
	LinkedIn           string `json:"linkedin"`
	YouTube            string `json:"youtube"`
	Logo               string `json:"logo"`
	Favicon            string `json:"favicon"`
	FoundingYear       int    `json:"founding_year"`
	RegistrationNumber string `json:"registration_number"`
}
