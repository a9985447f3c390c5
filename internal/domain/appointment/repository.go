package appointment

import (
	"context"
	"time"

	"github.com/aupetservices/petcare-scheduler/internal/models"
)

type Repository interface {
	// -------- Directory lookups --------
	GetPetByID(
		ctx context.Context,
		id string,
	) (*models.Pet, error)

	GetProviderByID(
		ctx context.Context,
		id string,
	) (*models.Provider, error)

	GetTutorByID(
		ctx context.Context,
		id string,
	) (*models.Tutor, error)

	ListPetsByTutor(
		ctx context.Context,
		tutorID string,
	) ([]models.Pet, error)

	PetExists(
		ctx context.Context,
		id string,
	) (bool, error)

	ProviderExists(
		ctx context.Context,
		id string,
	) (bool, error)

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointmentFields(
		ctx context.Context,
		id string,
		fields map[string]any,
	) (int64, error)

	DeleteAppointment(
		ctx context.Context,
		id string,
	) (int64, error)

	DeleteAppointmentsByPet(
		ctx context.Context,
		petID string,
	) error

	DeleteAppointmentsByProvider(
		ctx context.Context,
		providerID string,
	) error

	// -------- Appointment (read) --------
	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		plan Plan,
	) ([]models.Appointment, error)

	CountAppointments(
		ctx context.Context,
		filter Filter,
	) (int64, error)

	// -------- Counters --------
	CountActiveInWindow(
		ctx context.Context,
		providerID string,
		start time.Time,
		end time.Time,
	) (int64, error)

	CountByStatusInWindow(
		ctx context.Context,
		providerID string,
		status Status,
		start time.Time,
		end time.Time,
	) (int64, error)
}

// ReviewLookup responde quais appointments um autor já avaliou.
type ReviewLookup interface {
	ReviewedAppointmentIDs(
		ctx context.Context,
		authorID string,
		appointmentIDs []string,
	) (map[string]bool, error)
}

// ChatService é o colaborador de chat consumido pelo create:
// resolve (ou cria) a sala para um conjunto de participantes.
type ChatService interface {
	GetOrCreateRoomForParticipants(
		ctx context.Context,
		participantIDs []string,
		name string,
	) (*models.ChatRoom, error)
}
