package chat

import (
	"context"
	"time"

	domain "github.com/aupetservices/petcare-scheduler/internal/domain/chat"
	"github.com/aupetservices/petcare-scheduler/internal/httperr"
	"github.com/aupetservices/petcare-scheduler/internal/infra/repository"
	"github.com/aupetservices/petcare-scheduler/internal/models"
	"github.com/google/uuid"
)

// ======================================================
// SEND MESSAGE
// ======================================================

type SendMessage struct {
	repo domain.Repository
}

func NewSendMessage(repo domain.Repository) *SendMessage {
	return &SendMessage{repo: repo}
}

type SendMessageInput struct {
	RoomID  string
	Content string
}

func (uc *SendMessage) Execute(
	ctx context.Context,
	senderID string,
	in SendMessageInput,
) (*models.Message, error) {

	if _, err := uuid.Parse(in.RoomID); err != nil {
		return nil, httperr.ErrNotFound("room_not_found")
	}

	room, err := uc.repo.GetRoomByID(ctx, in.RoomID)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("room_not_found")
		}
		return nil, err
	}

	msg := &models.Message{
		ChatRoomID: room.ID,
		SenderID:   senderID,
		Content:    in.Content,
	}

	if err := uc.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	// Escrita separada, não transacional com o insert da mensagem:
	// se falhar, a mensagem já é fato durável e o timestamp fica
	// defasado até a próxima (staleness aceitável).
	_ = uc.repo.TouchRoom(ctx, room.ID, time.Now())

	return msg, nil
}
