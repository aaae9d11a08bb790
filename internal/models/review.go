package models

// Review belongs to exactly one completed booking.
type Review struct {
	BaseModel
	BookingID   string `gorm:"not null;uniqueIndex"`
	CaregiverID string `gorm:"not null;index"`
	OwnerID     string `gorm:"not null;index"`
	Rating      int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment     string

	// Relations
	Booking   Booking          `gorm:"foreignKey:BookingID"`
	Caregiver CaregiverProfile `gorm:"foreignKey:CaregiverID"`
	Owner     User             `gorm:"foreignKey:OwnerID"`
}
