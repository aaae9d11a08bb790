package models

import (
	"math"
	"time"
)

type Booking struct {
	BaseModel
	OwnerID      string        `gorm:"not null;index"`
	CaregiverID  string        `gorm:"not null;index"`
	PetID        string        `gorm:"not null;index"`
	ServiceID    string        `gorm:"not null"`
	StartTime    time.Time     `gorm:"not null"`
	EndTime      time.Time     `gorm:"not null"`
	Status       BookingStatus `gorm:"not null;default:0"`
	TotalPrice   float64       `gorm:"not null"`
	Instructions string

	// Relations
	Owner     User             `gorm:"foreignKey:OwnerID"`
	Caregiver CaregiverProfile `gorm:"foreignKey:CaregiverID"`
	Pet       Pet              `gorm:"foreignKey:PetID"`
	Service   Service          `gorm:"foreignKey:ServiceID"`
	Review    *Review          `gorm:"foreignKey:BookingID"`
}

// Hours returns the booked duration in fractional hours.
func (b *Booking) Hours() float64 {
	return b.EndTime.Sub(b.StartTime).Hours()
}

// CalculateTotalPrice prices a booking: elapsed hours times the base price,
// rounded to 2 decimals. The server value is authoritative; anything the
// client sends is ignored.
func CalculateTotalPrice(start, end time.Time, basePrice float64) float64 {
	hours := end.Sub(start).Hours()
	return math.Round(hours*basePrice*100) / 100
}

// Overlaps reports whether two half-open intervals [start, end) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
