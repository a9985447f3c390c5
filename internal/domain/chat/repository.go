package chat

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/aupetservices/petcare-scheduler/internal/models"
)

// DefaultRoomName é o nome genérico de salas criadas sem nome.
const DefaultRoomName = "Conversa"

// ParticipantsKey devolve a chave canônica de um conjunto de
// participantes: ids ordenados e concatenados. Dois conjuntos iguais
// produzem sempre a mesma chave, independente da ordem de entrada.
func ParticipantsKey(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return strings.Join(sorted, ":")
}

type Repository interface {
	CreateRoom(
		ctx context.Context,
		room *models.ChatRoom,
		participantIDs []string,
	) error

	FindActiveRoomByKey(
		ctx context.Context,
		key string,
	) (*models.ChatRoom, error)

	GetRoomByID(
		ctx context.Context,
		id string,
	) (*models.ChatRoom, error)

	ListRoomsByUser(
		ctx context.Context,
		userID string,
	) ([]models.ChatRoom, error)

	CreateMessage(
		ctx context.Context,
		msg *models.Message,
	) error

	TouchRoom(
		ctx context.Context,
		roomID string,
		at time.Time,
	) error

	ListMessages(
		ctx context.Context,
		roomID string,
	) ([]models.Message, error)

	GetProviderByID(
		ctx context.Context,
		id string,
	) (*models.Provider, error)
}
