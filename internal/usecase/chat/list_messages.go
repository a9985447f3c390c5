package chat

import (
	"context"

	domain "github.com/aupetservices/petcare-scheduler/internal/domain/chat"
	"github.com/aupetservices/petcare-scheduler/internal/models"
	"github.com/google/uuid"
)

// ======================================================
// LIST MESSAGES
// ======================================================

type ListMessages struct {
	repo domain.Repository
}

func NewListMessages(repo domain.Repository) *ListMessages {
	return &ListMessages{repo: repo}
}

// Execute devolve as mensagens da sala em ordem de criação.
// Id malformado degrada para lista vazia (leitura nunca rejeita).
func (uc *ListMessages) Execute(
	ctx context.Context,
	roomID string,
) ([]models.Message, error) {

	if _, err := uuid.Parse(roomID); err != nil {
		return []models.Message{}, nil
	}

	msgs, err := uc.repo.ListMessages(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []models.Message{}
	}
	return msgs, nil
}
