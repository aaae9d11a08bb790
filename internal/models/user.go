package models

import "time"

// User rows are soft-deleted; account deletion keeps the row for audit and
// booking history.
type User struct {
	BaseModelWithDeleted
	Email        string     `gorm:"uniqueIndex;not null"`
	PasswordHash string     `gorm:"not null"`
	Name         string     `gorm:"not null"`
	Phone        string
	Address      string
	City         string
	Latitude     float64
	Longitude    float64
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'user'"`
	Status       UserStatus `gorm:"type:varchar(20);default:'pending'"`
	IsVerified   bool       `gorm:"default:false"`

	// Relations
	CaregiverProfile *CaregiverProfile `gorm:"foreignKey:UserID"`
	Pets             []Pet             `gorm:"foreignKey:OwnerID"`
	RefreshTokens    []RefreshToken    `gorm:"foreignKey:UserID"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
