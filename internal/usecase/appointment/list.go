package appointment

import (
	"context"

	"golang.org/x/sync/errgroup"

	domain "github.com/aupetservices/petcare-scheduler/internal/domain/appointment"
	"github.com/aupetservices/petcare-scheduler/internal/dto"
	"github.com/aupetservices/petcare-scheduler/internal/models"
)

// ======================================================
// LIST (enrichment composer)
// ======================================================

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute roda o plano normalizado: página e contagem em paralelo
// (leituras independentes), depois monta o envelope.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	query domain.ListQuery,
) (*dto.AppointmentPage, error) {

	plan := query.Build()

	var (
		items []models.Appointment
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		items, err = uc.repo.ListAppointments(gctx, plan)
		return err
	})

	g.Go(func() error {
		var err error
		total, err = uc.repo.CountAppointments(gctx, plan.Filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.AppointmentPage{
		Items: toItemDTOs(items),
		Total: total,
		Page:  plan.Page,
		Limit: plan.Limit,
		Pages: domain.Pages(total, plan.Limit),
	}, nil
}

func toItemDTOs(items []models.Appointment) []dto.AppointmentItemDTO {
	out := make([]dto.AppointmentItemDTO, 0, len(items))
	for _, ap := range items {
		out = append(out, toItemDTO(ap))
	}
	return out
}

func toItemDTO(ap models.Appointment) dto.AppointmentItemDTO {
	return dto.AppointmentItemDTO{
		ID:          ap.ID,
		Date:        ap.Date,
		DurationMin: ap.DurationMin,
		Reason:      ap.Reason,
		Notes:       ap.Notes,
		Location:    ap.Location,
		Price:       ap.Price,
		Status:      ap.Status,
		IsRated:     ap.IsRated,
		Pet: dto.PetRefDTO{
			ID:        ap.Pet.ID,
			Name:      ap.Pet.Name,
			Species:   ap.Pet.Species,
			TutorID:   ap.Pet.TutorID,
			TutorName: ap.Pet.Tutor.Name,
		},
		Provider: dto.ProviderRefDTO{
			ID:    ap.Provider.ID,
			Name:  ap.Provider.Name,
			Email: ap.Provider.Email,
			Phone: ap.Provider.Phone,
		},
	}
}

func emptyPage(query domain.ListQuery) *dto.AppointmentPage {
	plan := query.Build()
	return &dto.AppointmentPage{
		Items: []dto.AppointmentItemDTO{},
		Total: 0,
		Page:  plan.Page,
		Limit: plan.Limit,
		Pages: 0,
	}
}
