package appointment

import (
	"context"
	"time"

	"github.com/aupetservices/petcare-scheduler/internal/audit"
	domain "github.com/aupetservices/petcare-scheduler/internal/domain/appointment"
	"github.com/aupetservices/petcare-scheduler/internal/httperr"
	"github.com/aupetservices/petcare-scheduler/internal/models"
	"github.com/google/uuid"
)

// ======================================================
// INPUT
// ======================================================

// UpdateAppointmentInput é um patch esparso: só campos presentes
// (ponteiro não-nil) são aplicados. ClearService distingue
// "service_id: null" explícito de campo omitido.
type UpdateAppointmentInput struct {
	PetID      *string
	ProviderID *string

	ServiceID    *string
	ClearService bool

	Date        *time.Time
	DurationMin *int

	Reason   *string
	Notes    *string
	Location *string
	Price    *float64

	ContactEmail *string
	ContactPhone *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	guard *Guard
	find  *FindAppointment
	audit audit.Reporter
}

func NewUpdateAppointment(
	repo domain.Repository,
	guard *Guard,
	find *FindAppointment,
	reporter audit.Reporter,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		guard: guard,
		find:  find,
		audit: reporter,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id string,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	if _, err := uuid.Parse(id); err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	// guard revalida apenas referências presentes no patch
	if in.PetID != nil {
		if err := uc.guard.AssertPetExists(ctx, *in.PetID); err != nil {
			return nil, err
		}
	}
	if in.ProviderID != nil {
		if err := uc.guard.AssertProviderExists(ctx, *in.ProviderID); err != nil {
			return nil, err
		}
	}

	fields := map[string]any{}
	if in.PetID != nil {
		fields["pet_id"] = *in.PetID
	}
	if in.ProviderID != nil {
		fields["provider_id"] = *in.ProviderID
	}
	if in.ClearService {
		fields["service_id"] = nil
	} else if in.ServiceID != nil {
		fields["service_id"] = *in.ServiceID
	}
	if in.Date != nil {
		fields["date"] = *in.Date
	}
	if in.DurationMin != nil {
		fields["duration_min"] = *in.DurationMin
	}
	if in.Reason != nil {
		fields["reason"] = *in.Reason
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.ContactEmail != nil {
		fields["contact_email"] = *in.ContactEmail
	}
	if in.ContactPhone != nil {
		fields["contact_phone"] = *in.ContactPhone
	}

	if len(fields) > 0 {
		rows, err := uc.repo.UpdateAppointmentFields(ctx, id, fields)
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, httperr.ErrNotFound("appointment_not_found")
		}

		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_updated",
			Entity:   "appointment",
			EntityID: &id,
		})
	}

	return uc.find.Execute(ctx, id)
}
