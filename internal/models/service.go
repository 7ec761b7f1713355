package models

// Service categories form a closed set.
const (
	ServiceCategoryFarming    = "farming"
	ServiceCategoryLivestock  = "livestock"
	ServiceCategoryTechnology = "technology"
)

// ValidServiceCategory reports whether c is one of the known categories.
func ValidServiceCategory(c string) bool {
	switch c {
	case ServiceCategoryFarming, ServiceCategoryLivestock, ServiceCategoryTechnology:
		return true
	}
	return false
}

// ServiceModel is an investment service offering.
type ServiceModel struct {
	Base
	Title          string      `json:"title"           gorm:"not null"`
	Slug           string      `json:"slug"            gorm:"uniqueIndex;not null"`
	Category       string      `json:"category"        gorm:"index;not null"`
	Description    string      `json:"description"     gorm:"type:longtext"`
	Image          string      `json:"image"`
	HeaderImage    string      `json:"header_image"`
	ThumbnailImage string      `json:"thumbnail_image"`
	GalleryImages  StringSlice `json:"gallery_images"  gorm:"type:json;serializer:json"`
	MinInvestment  float64     `json:"min_investment"`
	MaxInvestment  float64     `json:"max_investment"`
	ROIMin         float64     `json:"roi_min"`
	ROIMax         float64     `json:"roi_max"`
	DurationMonths int         `json:"duration_months"`
	Status         BoolLike    `json:"status"          gorm:"default:true;index"`
	Featured       BoolLike    `json:"featured"        gorm:"default:false;index"`
}

func (ServiceModel) TableName() string { return "services" }
