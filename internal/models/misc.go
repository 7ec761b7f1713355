package models

// OptionModel is a generic key-value store for singleton blobs such as the
// company info record.
type OptionModel struct {
	Base
	Name  string `json:"name"  gorm:"uniqueIndex;not null"`
	Value string `json:"value" gorm:"type:longtext"`
}

func (OptionModel) TableName() string { return "options" }

// FileReferenceModel tracks uploaded files so unreferenced uploads can be
// listed and cleaned up from the admin panel.
type FileReferenceModel struct {
	Base
	FileURL  string `json:"file_url"  gorm:"index"`
	FileName string `json:"file_name" gorm:"index"`
	Kind     string `json:"kind"      gorm:"index"` // "image" | "video"
	Status   string `json:"status"    gorm:"default:pending;index"`
}

func (FileReferenceModel) TableName() string { return "file_references" }
