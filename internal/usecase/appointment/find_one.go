package appointment

import (
	"context"

	domain "github.com/aupetservices/petcare-scheduler/internal/domain/appointment"
	"github.com/aupetservices/petcare-scheduler/internal/httperr"
	"github.com/aupetservices/petcare-scheduler/internal/infra/repository"
	"github.com/aupetservices/petcare-scheduler/internal/models"
	"github.com/google/uuid"
)

// ======================================================
// FIND ONE
// ======================================================

type FindAppointment struct {
	repo domain.Repository
}

func NewFindAppointment(repo domain.Repository) *FindAppointment {
	return &FindAppointment{repo: repo}
}

// Execute devolve o registro com joins completos
// (pet→tutor, prestador, serviço).
func (uc *FindAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	if _, err := uuid.Parse(id); err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("appointment_not_found")
		}
		return nil, err
	}

	return ap, nil
}
