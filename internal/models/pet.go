package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Pet struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	TutorID string `gorm:"size:36;index" json:"tutor_id"`
	Tutor   Tutor  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"tutor"`

	Name      string     `gorm:"size:100;not null" json:"name"`
	Species   string     `gorm:"size:50" json:"species"`
	Breed     string     `gorm:"size:100" json:"breed"`
	BirthDate *time.Time `json:"birth_date"`
	Notes     string     `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Pet) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
