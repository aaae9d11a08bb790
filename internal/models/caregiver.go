package models

import "time"

type CaregiverProfile struct {
	BaseModel
	UserID          string  `gorm:"uniqueIndex;not null"`
	Experience      int     // years
	Description     string
	ServiceRadiusKM float64 `gorm:"not null;default:0"`
	IsVerified      bool    `gorm:"default:false"`
	VerifiedAt      *time.Time
	Rating          float64 `gorm:"default:0"`
	ReviewCount     int     `gorm:"default:0"`

	// Relations
	User         User                    `gorm:"foreignKey:UserID"`
	Rates        []CaregiverRate         `gorm:"foreignKey:CaregiverID"`
	Availability []CaregiverAvailability `gorm:"foreignKey:CaregiverID"`
}

// CaregiverRate is unique per (caregiver, service); writes go through
// an upsert on that key.
type CaregiverRate struct {
	BaseModel
	CaregiverID         string  `gorm:"not null;uniqueIndex:idx_caregiver_service"`
	ServiceID           string  `gorm:"not null;uniqueIndex:idx_caregiver_service"`
	BasePrice           float64 `gorm:"not null"`
	AdditionalHourPrice float64

	// Relations
	Service Service `gorm:"foreignKey:ServiceID"`
}

// CaregiverAvailability is a weekly recurring slot. Times are stored as
// "HH:MM" strings; string comparison orders them correctly.
type CaregiverAvailability struct {
	BaseModel
	CaregiverID string `gorm:"not null;index"`
	Weekday     int    `gorm:"not null;check:weekday >= 0 AND weekday <= 6"`
	StartTime   string `gorm:"type:varchar(5);not null"`
	EndTime     string `gorm:"type:varchar(5);not null"`
}
