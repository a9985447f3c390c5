package appointment

import (
	"context"
	"time"

	"github.com/aupetservices/petcare-scheduler/internal/audit"
	domain "github.com/aupetservices/petcare-scheduler/internal/domain/appointment"
	"github.com/aupetservices/petcare-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PetID      string
	ProviderID string
	ServiceID  *string

	Date        time.Time
	DurationMin int

	Reason   string
	Notes    string
	Location string
	Price    float64

	ContactEmail string
	ContactPhone string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	guard *Guard
	chat  domain.ChatService
	audit audit.Reporter
}

func NewCreateAppointment(
	repo domain.Repository,
	guard *Guard,
	chat domain.ChatService,
	reporter audit.Reporter,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		guard: guard,
		chat:  chat,
		audit: reporter,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Referências precisam existir
	// --------------------------------------------------
	if err := uc.guard.AssertPetExists(ctx, in.PetID); err != nil {
		return nil, err
	}
	if err := uc.guard.AssertProviderExists(ctx, in.ProviderID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Escrita primária
	// --------------------------------------------------
	ap := &models.Appointment{
		PetID:        in.PetID,
		ProviderID:   in.ProviderID,
		ServiceID:    in.ServiceID,
		Date:         in.Date,
		DurationMin:  in.DurationMin,
		Reason:       in.Reason,
		Notes:        in.Notes,
		Location:     in.Location,
		Price:        in.Price,
		Status:       string(domain.StatusPending),
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// --------------------------------------------------
	// 3️⃣ Side effect: sala de chat (best-effort)
	// --------------------------------------------------
	// Falha aqui nunca desfaz nem bloqueia a criação: o agendamento
	// já é fato durável. O erro é reportado e engolido.
	if err := uc.provisionRoom(ctx, ap); err != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_room_provision_failed",
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]any{"error": err.Error()},
		})
	}

	return ap, nil
}

// provisionRoom resolve tutor e prestador até os respectivos usuários
// e garante a sala de chat do par. Qualquer elo ausente interrompe.
func (uc *CreateAppointment) provisionRoom(
	ctx context.Context,
	ap *models.Appointment,
) error {

	pet, err := uc.repo.GetPetByID(ctx, ap.PetID)
	if err != nil {
		return err
	}

	tutor, err := uc.repo.GetTutorByID(ctx, pet.TutorID)
	if err != nil {
		return err
	}
	if tutor.UserID == "" {
		return errTutorWithoutUser
	}

	provider, err := uc.repo.GetProviderByID(ctx, ap.ProviderID)
	if err != nil {
		return err
	}
	if provider.UserID == nil || *provider.UserID == "" {
		return errProviderWithoutUser
	}

	_, err = uc.chat.GetOrCreateRoomForParticipants(
		ctx,
		[]string{tutor.UserID, *provider.UserID},
		"Conversa sobre "+pet.Name,
	)
	return err
}
