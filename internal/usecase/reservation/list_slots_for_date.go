package reservation

import (
	"context"
	"time"

	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/timezone"
)

type ListSlotsForDate struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListSlotsForDate(repo domain.Repository, tz string) *ListSlotsForDate {
	return &ListSlotsForDate{
		repo: repo,
		now:  func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *ListSlotsForDate) Execute(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) (*domain.Slots, error) {

	date = timezone.Date(date)

	// --------------------------------------------------
	// 1️⃣ Past dates are never offered
	// --------------------------------------------------
	if date.Before(timezone.Date(uc.now())) {
		return nil, httperr.ErrTemporal(domain.CodeStaleDate)
	}

	// --------------------------------------------------
	// 2️⃣ Working day and slot grid must both exist
	// --------------------------------------------------
	works, err := uc.repo.HasWorkingDay(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	if !works {
		return nil, httperr.ErrNotFound(domain.CodeNotWorkingDay)
	}

	offered, err := uc.repo.ListSlotTimes(ctx, doctorID, domain.Weekday(date))
	if err != nil {
		return nil, err
	}
	if len(offered) == 0 {
		return nil, httperr.ErrNotFound(domain.CodeNotWorkingDay)
	}

	// --------------------------------------------------
	// 3️⃣ Slots held by pending or completed reservations
	// --------------------------------------------------
	taken, err := uc.repo.ListTakenTimes(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	return &domain.Slots{
		Offered: domain.SortTimes(offered),
		Taken:   domain.SortTimes(taken),
	}, nil
}
