package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/aupetservices/petcare-scheduler/internal/domain/appointment"
	"github.com/aupetservices/petcare-scheduler/internal/models"
)

type ReviewGormLookup struct {
	db *gorm.DB
}

func NewReviewGormLookup(db *gorm.DB) *ReviewGormLookup {
	return &ReviewGormLookup{db: db}
}

func (r *ReviewGormLookup) ReviewedAppointmentIDs(
	ctx context.Context,
	authorID string,
	appointmentIDs []string,
) (map[string]bool, error) {

	out := make(map[string]bool)
	if len(appointmentIDs) == 0 {
		return out, nil
	}

	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("author_id = ? AND appointment_id IN ?", authorID, appointmentIDs).
		Pluck("appointment_id", &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

// Compile-time check
var _ domain.ReviewLookup = (*ReviewGormLookup)(nil)
