package chat

import (
	"context"

	appointmentDomain "github.com/aupetservices/petcare-scheduler/internal/domain/appointment"
	domain "github.com/aupetservices/petcare-scheduler/internal/domain/chat"
	"github.com/aupetservices/petcare-scheduler/internal/httperr"
	"github.com/aupetservices/petcare-scheduler/internal/infra/repository"
	"github.com/aupetservices/petcare-scheduler/internal/models"
	"github.com/google/uuid"
)

// ======================================================
// GET OR CREATE ROOM
// ======================================================
//
// A resolução é por igualdade exata do conjunto de participantes:
// a chave canônica (ids ordenados) identifica a sala ativa. Chamadas
// repetidas com o mesmo conjunto devolvem sempre a mesma sala.

type GetOrCreateRoom struct {
	repo domain.Repository
}

func NewGetOrCreateRoom(repo domain.Repository) *GetOrCreateRoom {
	return &GetOrCreateRoom{repo: repo}
}

func (uc *GetOrCreateRoom) Execute(
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

	key := domain.ParticipantsKey(participantIDs)

	room, err := uc.repo.FindActiveRoomByKey(ctx, key)
	if err == nil {
		return room, nil
	}
	if !repository.IsRecordNotFound(err) {
		return nil, err
	}

	if name == "" {
		name = domain.DefaultRoomName
	}

	created := &models.ChatRoom{
		Name:            name,
		ParticipantsKey: key,
		IsActive:        true,
	}

	if err := uc.repo.CreateRoom(ctx, created, participantIDs); err != nil {
		return nil, err
	}

	full, err := uc.repo.GetRoomByID(ctx, created.ID)
	if err != nil {
		return created, nil
	}
	return full, nil
}

// GetOrCreateRoomForParticipants é o contrato consumido pelo módulo
// de agendamento. Delega para Execute.
func (uc *GetOrCreateRoom) GetOrCreateRoomForParticipants(
	ctx context.Context,
	participantIDs []string,
	name string,
) (*models.ChatRoom, error) {
	return uc.Execute(ctx, participantIDs, name)
}

// Compile-time check
var _ appointmentDomain.ChatService = (*GetOrCreateRoom)(nil)

// ======================================================
// GET OR CREATE: TUTOR × PRESTADOR
// ======================================================

type GetOrCreateRoomForTutorAndProvider struct {
	repo        domain.Repository
	getOrCreate *GetOrCreateRoom
}

func NewGetOrCreateRoomForTutorAndProvider(
	repo domain.Repository,
	getOrCreate *GetOrCreateRoom,
) *GetOrCreateRoomForTutorAndProvider {
	return &GetOrCreateRoomForTutorAndProvider{
		repo:        repo,
		getOrCreate: getOrCreate,
	}
}

func (uc *GetOrCreateRoomForTutorAndProvider) Execute(
	ctx context.Context,
	tutorUserID string,
	providerID string,
) (*models.ChatRoom, error) {

	if _, err := uuid.Parse(providerID); err != nil {
		return nil, httperr.ErrNotFound("invalid_provider_id")
	}

	provider, err := uc.repo.GetProviderByID(ctx, providerID)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("provider_not_found")
		}
		return nil, err
	}

	if provider.UserID == nil || *provider.UserID == "" {
		return nil, httperr.ErrNotFound("provider_without_user")
	}

	return uc.getOrCreate.Execute(
		ctx,
		[]string{tutorUserID, *provider.UserID},
		"",
	)
}
