package appointment

import (
	"context"

	domain "github.com/aupetservices/petcare-scheduler/internal/domain/appointment"
	"github.com/aupetservices/petcare-scheduler/internal/dto"
	"github.com/google/uuid"
)

// ======================================================
// LIST BY TUTOR (com join de reviews)
// ======================================================

type ListAppointmentsByTutor struct {
	repo    domain.Repository
	reviews domain.ReviewLookup
	list    *ListAppointments
}

func NewListAppointmentsByTutor(
	repo domain.Repository,
	reviews domain.ReviewLookup,
	list *ListAppointments,
) *ListAppointmentsByTutor {
	return &ListAppointmentsByTutor{
		repo:    repo,
		reviews: reviews,
		list:    list,
	}
}

// Execute restringe a consulta aos pets do tutor e anota cada item
// com is_reviewed. Tutor sem pets devolve envelope vazio sem nunca
// consultar appointments. O join de reviews não altera total/pages.
func (uc *ListAppointmentsByTutor) Execute(
	ctx context.Context,
	tutorID string,
	query domain.ListQuery,
) (*dto.AppointmentPage, error) {

	if _, err := uuid.Parse(tutorID); err != nil {
		return emptyPage(query), nil
	}

	pets, err := uc.repo.ListPetsByTutor(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	if len(pets) == 0 {
		return emptyPage(query), nil
	}

	petIDs := make([]string, 0, len(pets))
	for _, pet := range pets {
		petIDs = append(petIDs, pet.ID)
	}
	query.PetIDs = petIDs

	page, err := uc.list.Execute(ctx, query)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(page.Items))
	for _, item := range page.Items {
		ids = append(ids, item.ID)
	}

	reviewed, err := uc.reviews.ReviewedAppointmentIDs(ctx, tutorID, ids)
	if err != nil {
		return nil, err
	}

	for i := range page.Items {
		flag := reviewed[page.Items[i].ID]
		page.Items[i].IsReviewed = &flag
	}

	return page, nil
}
