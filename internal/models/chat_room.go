package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatRoom é uma conversa entre um conjunto fixo de usuários.
// ParticipantsKey é a chave canônica do conjunto (ids ordenados e
// concatenados) usada na resolução find-or-create por igualdade exata.
type ChatRoom struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name            string `gorm:"size:100;default:'Conversa'" json:"name"`
	ParticipantsKey string `gorm:"size:255;index" json:"-"`
	IsActive        bool   `gorm:"default:true" json:"is_active"`

	Participants []ChatRoomParticipant `json:"participants"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *ChatRoom) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type ChatRoomParticipant struct {
	ID uint `gorm:"primaryKey" json:"-"`

	ChatRoomID string `gorm:"size:36;index" json:"chat_room_id"`

	UserID string `gorm:"size:36;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`
}
