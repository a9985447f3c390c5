package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aupetservices/petcare-scheduler/internal/models"
	"github.com/aupetservices/petcare-scheduler/internal/timezone"
)

func TestCountTodayWindowAndStatuses(t *testing.T) {
	f := newListFixture(t)

	ref := time.Date(2025, 6, 10, 12, 0, 0, 0, timezone.Location(timezone.DefaultTimezone))
	start, end := timezone.DayWindow(ref, timezone.DefaultTimezone)

	// cache nil: sempre consulta o banco
	uc := NewCountAppointmentsForToday(f.repo, nil).
		WithNow(func() time.Time { return ref })

	seed := func(date time.Time, status string) {
		seedAppointment(t, f.db, models.Appointment{
			PetID:      f.pet.ID,
			ProviderID: f.provider.ID,
			Date:       date,
			Status:     status,
		})
	}

	// dentro da janela
	seed(start, "pending")
	seed(at(start, 10*time.Hour), "confirmed")
	seed(at(end, -time.Second), "confirmed")
	// terminais não contam
	seed(at(start, time.Hour), "cancelled")
	seed(at(start, 2*time.Hour), "completed")
	// fora da janela: bordas exclusivas
	seed(at(start, -time.Second), "pending")
	seed(end, "confirmed")
	// outro prestador
	other := seedProvider(t, f.db, "Outro", nil)
	seedAppointment(t, f.db, models.Appointment{
		PetID:      f.pet.ID,
		ProviderID: other.ID,
		Date:       at(start, time.Hour),
		Status:     "confirmed",
	})

	got, err := uc.Execute(context.Background(), f.provider.ID)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), got.Total)
	assert.Equal(t, int64(2), got.Confirmed)
}

func TestCountTodayMalformedProviderID(t *testing.T) {
	f := newListFixture(t)

	uc := NewCountAppointmentsForToday(f.repo, nil)

	got, err := uc.Execute(context.Background(), "abc")

	assert.NoError(t, err)
	assert.Equal(t, int64(0), got.Total)
	assert.Equal(t, int64(0), got.Confirmed)
}

func TestCountTodayEmptyDay(t *testing.T) {
	f := newListFixture(t)

	ref := time.Date(2025, 6, 10, 12, 0, 0, 0, timezone.Location(timezone.DefaultTimezone))
	uc := NewCountAppointmentsForToday(f.repo, nil).
		WithNow(func() time.Time { return ref })

	// appointment de ontem não aparece
	seedAppointment(t, f.db, models.Appointment{
		PetID:      f.pet.ID,
		ProviderID: f.provider.ID,
		Date:       ref.AddDate(0, 0, -1),
		Status:     "pending",
	})

	got, err := uc.Execute(context.Background(), f.provider.ID)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), got.Total)
	assert.Equal(t, int64(0), got.Confirmed)
}
