package reservation

import (
	"context"
	"errors"

	"github.com/voicedoc/clinic-api/internal/audit"
	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/models"
)

// CompleteReservation lets the treating doctor close a pending reservation
// with an opinion.
type CompleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteReservation {
	return &CompleteReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteReservation) Execute(
	ctx context.Context,
	doctorUserID uint,
	reservationID uint,
	opinion string,
) (*models.Reservation, error) {

	doctor, err := uc.repo.GetDoctorByUserID(ctx, doctorUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrForbidden(domain.CodeForbidden)
		}
		return nil, err
	}

	r, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrNotFound(domain.CodeReservationNotFound)
		}
		return nil, err
	}

	if r.DoctorID != doctor.ID {
		return nil, httperr.ErrForbidden(domain.CodeForbidden)
	}

	if err := domain.Complete(r, opinion); err != nil {
		return nil, err
	}

	changed, err := uc.repo.TransitionStatus(
		ctx,
		r.ID,
		domain.StatusPending,
		domain.StatusCompleted,
		&opinion,
	)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, httperr.ErrConflict(domain.CodeAlreadyFinalized)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &doctorUserID,
		Action:   "reservation_completed",
		Entity:   "reservation",
		EntityID: &r.ID,
	})

	return r, nil
}
