package chat

import (
	"context"

	domain "github.com/aupetservices/petcare-scheduler/internal/domain/chat"
	"github.com/aupetservices/petcare-scheduler/internal/models"
	"github.com/google/uuid"
)

// ======================================================
// LIST ROOMS BY USER
// ======================================================

type ListRoomsByUser struct {
	repo domain.Repository
}

func NewListRoomsByUser(repo domain.Repository) *ListRoomsByUser {
	return &ListRoomsByUser{repo: repo}
}

// Execute lista as salas ativas do usuário, mais recentes primeiro.
func (uc *ListRoomsByUser) Execute(
	ctx context.Context,
	userID string,
) ([]models.ChatRoom, error) {

	if _, err := uuid.Parse(userID); err != nil {
		return []models.ChatRoom{}, nil
	}

	rooms, err := uc.repo.ListRoomsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []models.ChatRoom{}
	}
	return rooms, nil
}
