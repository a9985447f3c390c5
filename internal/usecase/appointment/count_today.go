package appointment

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aupetservices/petcare-scheduler/internal/cache"
	domain "github.com/aupetservices/petcare-scheduler/internal/domain/appointment"
	"github.com/aupetservices/petcare-scheduler/internal/dto"
	"github.com/aupetservices/petcare-scheduler/internal/timezone"
	"github.com/google/uuid"
)

// ======================================================
// COUNT TODAY
// ======================================================

type CountAppointmentsForToday struct {
	repo     domain.Repository
	counters *cache.CounterCache

	// now é injetável para testes de borda de janela
	now func() time.Time
}

func NewCountAppointmentsForToday(
	repo domain.Repository,
	counters *cache.CounterCache,
) *CountAppointmentsForToday {
	return &CountAppointmentsForToday{
		repo:     repo,
		counters: counters,
		now:      time.Now,
	}
}

// WithNow troca a fonte de tempo (testes).
func (uc *CountAppointmentsForToday) WithNow(now func() time.Time) *CountAppointmentsForToday {
	uc.now = now
	return uc
}

// Execute conta na janela meio-aberta do dia local:
// total de appointments não-terminais e o subconjunto confirmado.
// As duas contagens rodam em paralelo.
func (uc *CountAppointmentsForToday) Execute(
	ctx context.Context,
	providerID string,
) (*dto.TodayCountersDTO, error) {

	if _, err := uuid.Parse(providerID); err != nil {
		return &dto.TodayCountersDTO{}, nil
	}

	start, end := timezone.DayWindow(uc.now(), timezone.DefaultTimezone)

	if cached, ok := uc.counters.Get(ctx, providerID, start); ok {
		return &dto.TodayCountersDTO{
			Total:     cached.Total,
			Confirmed: cached.Confirmed,
		}, nil
	}

	var total, confirmed int64

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		total, err = uc.repo.CountActiveInWindow(gctx, providerID, start, end)
		return err
	})

	g.Go(func() error {
		var err error
		confirmed, err = uc.repo.CountByStatusInWindow(
			gctx, providerID, domain.StatusConfirmed, start, end,
		)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.counters.Set(ctx, providerID, start, cache.TodayCounters{
		Total:     total,
		Confirmed: confirmed,
	})

	return &dto.TodayCountersDTO{
		Total:     total,
		Confirmed: confirmed,
	}, nil
}
