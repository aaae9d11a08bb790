package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Pet struct {
	BaseModel
	OwnerID          string  `gorm:"not null;index"`
	Name             string  `gorm:"not null"`
	Species          string  `gorm:"not null"`
	Breed            string
	Age              int
	Weight           float64
	CareInstructions string
	IsActive         bool           `gorm:"default:true"`
	Images           datatypes.JSON `gorm:"type:jsonb"` // ["uploads/abc.jpg", ...]

	// Relations
	Owner User `gorm:"foreignKey:OwnerID"`
}

// GetImages returns the pet image references as a string slice.
func (p *Pet) GetImages() []string {
	var images []string
	if len(p.Images) > 0 {
		_ = json.Unmarshal(p.Images, &images)
	}
	return images
}

// SetImages replaces the pet image references.
func (p *Pet) SetImages(images []string) {
	data, _ := json.Marshal(images)
	p.Images = datatypes.JSON(data)
}
