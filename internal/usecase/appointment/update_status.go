package appointment

import (
	"context"

	"github.com/aupetservices/petcare-scheduler/internal/audit"
	domain "github.com/aupetservices/petcare-scheduler/internal/domain/appointment"
	"github.com/aupetservices/petcare-scheduler/internal/httperr"
	"github.com/aupetservices/petcare-scheduler/internal/models"
	"github.com/google/uuid"
)

// ======================================================
// UPDATE STATUS / RATED FLAG
// ======================================================

// UpdateStatusInput aceita exatamente um dos dois campos.
type UpdateStatusInput struct {
	Status  *string
	IsRated *bool
}

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	find  *FindAppointment
	audit audit.Reporter
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	find *FindAppointment,
	reporter audit.Reporter,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		find:  find,
		audit: reporter,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	id string,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	if (in.Status == nil) == (in.IsRated == nil) {
		return nil, httperr.ErrBusiness("invalid_status_patch")
	}

	if _, err := uuid.Parse(id); err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	fields := map[string]any{}
	action := ""
	if in.Status != nil {
		fields["status"] = *in.Status
		action = "appointment_status_changed"
	} else {
		fields["is_rated"] = *in.IsRated
		action = "appointment_rated_flag_changed"
	}

	rows, err := uc.repo.UpdateAppointmentFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: &id,
		Metadata: fields,
	})

	return uc.find.Execute(ctx, id)
}
