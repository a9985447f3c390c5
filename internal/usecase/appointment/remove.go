package appointment

import (
	"context"

	"github.com/aupetservices/petcare-scheduler/internal/audit"
	domain "github.com/aupetservices/petcare-scheduler/internal/domain/appointment"
	"github.com/aupetservices/petcare-scheduler/internal/httperr"
	"github.com/google/uuid"
)

// ======================================================
// REMOVE
// ======================================================

type RemoveAppointment struct {
	repo  domain.Repository
	audit audit.Reporter
}

func NewRemoveAppointment(
	repo domain.Repository,
	reporter audit.Reporter,
) *RemoveAppointment {
	return &RemoveAppointment{
		repo:  repo,
		audit: reporter,
	}
}

func (uc *RemoveAppointment) Execute(
	ctx context.Context,
	id string,
) error {

	if _, err := uuid.Parse(id); err != nil {
		return httperr.ErrNotFound("appointment_not_found")
	}

	rows, err := uc.repo.DeleteAppointment(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.ErrNotFound("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}

// RemoveByPet é a limpeza em cascata quando um pet é removido.
// Idempotente: zero registros apagados não é erro.
func (uc *RemoveAppointment) RemoveByPet(
	ctx context.Context,
	petID string,
) error {

	if _, err := uuid.Parse(petID); err != nil {
		return nil
	}
	return uc.repo.DeleteAppointmentsByPet(ctx, petID)
}

// RemoveByProvider idem, para remoção de prestador.
func (uc *RemoveAppointment) RemoveByProvider(
	ctx context.Context,
	providerID string,
) error {

	if _, err := uuid.Parse(providerID); err != nil {
		return nil
	}
	return uc.repo.DeleteAppointmentsByProvider(ctx, providerID)
}
