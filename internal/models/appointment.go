package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	PetID string `gorm:"size:36;index" json:"pet_id"`
	Pet   Pet    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pet"`

	ProviderID string   `gorm:"size:36;index" json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider"`

	ServiceID *string  `gorm:"size:36;index" json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	Date        time.Time `gorm:"index" json:"date"`
	DurationMin int       `json:"duration_min"`

	Reason   string  `gorm:"size:255" json:"reason"`
	Notes    string  `gorm:"size:255" json:"notes"`
	Location string  `gorm:"size:255" json:"location"`
	Price    float64 `json:"price"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ContactEmail string `gorm:"size:100" json:"contact_email"`
	ContactPhone string `gorm:"size:20" json:"contact_phone"`

	IsRated bool `gorm:"default:false" json:"is_rated"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
