package models

// Service is a catalog entry (dog walking, boarding, home visit, ...).
type Service struct {
	BaseModel
	Name               string `gorm:"uniqueIndex;not null"`
	Description        string
	MinDurationMinutes int `gorm:"not null;default:30"`
	MaxDurationMinutes int `gorm:"not null;default:1440"`
}
