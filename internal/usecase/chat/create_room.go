package chat

import (
	"context"

	domain "github.com/aupetservices/petcare-scheduler/internal/domain/chat"
	"github.com/aupetservices/petcare-scheduler/internal/httperr"
	"github.com/aupetservices/petcare-scheduler/internal/models"
	"github.com/google/uuid"
)

// ======================================================
// CREATE ROOM (sem dedup: criação incondicional)
// ======================================================

type CreateRoom struct {
	repo domain.Repository
}

func NewCreateRoom(repo domain.Repository) *CreateRoom {
	return &CreateRoom{repo: repo}
}

func (uc *CreateRoom) Execute(
	ctx context.Context,
	participantIDs []string,
	name string,
) (*models.ChatRoom, error) {

	if len(participantIDs) == 0 {
		return nil, httperr.ErrBusiness("missing_participants")
	}

	for _, id := range participantIDs {
		if _, err := uuid.Parse(id); err != nil {
			return nil, httperr.ErrNotFound("invalid_participant_id")
		}
	}

	if name == "" {
		name = domain.DefaultRoomName
	}

	room := &models.ChatRoom{
		Name:            name,
		ParticipantsKey: domain.ParticipantsKey(participantIDs),
		IsActive:        true,
	}

	if err := uc.repo.CreateRoom(ctx, room, participantIDs); err != nil {
		return nil, err
	}

	created, err := uc.repo.GetRoomByID(ctx, room.ID)
	if err != nil {
		return room, nil
	}
	return created, nil
}
