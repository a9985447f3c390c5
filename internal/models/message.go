package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mensagens são imutáveis após criadas.
type Message struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ChatRoomID string   `gorm:"size:36;index" json:"chat_room_id"`
	ChatRoom   ChatRoom `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	SenderID string `gorm:"size:36;index" json:"sender_id"`
	Sender   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"sender"`

	Content string `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
