package models

// StatisticModel is a homepage counter ("120+ projects", "15 years").
// A free list: no ordering invariant beyond insertion.
type StatisticModel struct {
	Base
	Label  string `json:"label"  gorm:"not null"`
	Value  string `json:"value"  gorm:"not null"`
	Suffix string `json:"suffix"`
	Icon   string `json:"icon"`
}

func (StatisticModel) TableName() string { return "statistics" }
