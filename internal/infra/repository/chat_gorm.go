package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/aupetservices/petcare-scheduler/internal/domain/chat"
	"github.com/aupetservices/petcare-scheduler/internal/models"
)

type ChatGormRepository struct {
	db *gorm.DB
}

func NewChatGormRepository(db *gorm.DB) *ChatGormRepository {
	return &ChatGormRepository{db: db}
}

// --------------------------------------------------
// Rooms
// --------------------------------------------------

func (r *ChatGormRepository) CreateRoom(
	ctx context.Context,
	room *models.ChatRoom,
	participantIDs []string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}

		for _, userID := range participantIDs {
			p := models.ChatRoomParticipant{
				ChatRoomID: room.ID,
				UserID:     userID,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *ChatGormRepository) FindActiveRoomByKey(
	ctx context.Context,
	key string,
) (*models.ChatRoom, error) {

	var room models.ChatRoom
	if err := r.db.WithContext(ctx).
		Preload("Participants.User").
		Where("participants_key = ? AND is_active = ?", key, true).
		First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatGormRepository) GetRoomByID(
	ctx context.Context,
	id string,
) (*models.ChatRoom, error) {

	var room models.ChatRoom
	if err := r.db.WithContext(ctx).
		Preload("Participants.User").
		Where("id = ?", id).
		First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatGormRepository) ListRoomsByUser(
	ctx context.Context,
	userID string,
) ([]models.ChatRoom, error) {

	var rooms []models.ChatRoom
	if err := r.db.WithContext(ctx).
		Preload("Participants.User").
		Joins(
			"JOIN chat_room_participants p ON p.chat_room_id = chat_rooms.id AND p.user_id = ?",
			userID,
		).
		Where("chat_rooms.is_active = ?", true).
		Order("chat_rooms.updated_at DESC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *ChatGormRepository) TouchRoom(
	ctx context.Context,
	roomID string,
	at time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.ChatRoom{}).
		Where("id = ?", roomID).
		Update("updated_at", at).Error
}

// --------------------------------------------------
// Messages
// --------------------------------------------------

func (r *ChatGormRepository) CreateMessage(
	ctx context.Context,
	msg *models.Message,
) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *ChatGormRepository) ListMessages(
	ctx context.Context,
	roomID string,
) ([]models.Message, error) {

	var msgs []models.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("chat_room_id = ?", roomID).
		Order("created_at ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// --------------------------------------------------
// Provider lookup (vínculo prestador → usuário)
// --------------------------------------------------

func (r *ChatGormRepository) GetProviderByID(
	ctx context.Context,
	id string,
) (*models.Provider, error) {

	var provider models.Provider
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&provider).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

// Compile-time check
var _ domain.Repository = (*ChatGormRepository)(nil)
