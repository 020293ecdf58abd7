package reservation

import (
	"context"
	"time"

	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/httperr"
)

type ListWorkingWeekdays struct {
	repo domain.Repository
}

func NewListWorkingWeekdays(repo domain.Repository) *ListWorkingWeekdays {
	return &ListWorkingWeekdays{repo: repo}
}

// Execute returns the weekdays (0=Monday) on which the doctor has at least
// one working day in the given month.
func (uc *ListWorkingWeekdays) Execute(
	ctx context.Context,
	doctorID uint,
	year int,
	month int,
) ([]int, error) {

	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness(domain.CodeInvalidMonth)
	}

	from, to := domain.MonthRange(year, time.Month(month))

	days, err := uc.repo.ListWorkingDays(ctx, doctorID, from, to)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Date)
	}

	return domain.WorkingWeekdays(dates), nil
}
