package reservation

import (
	"context"
	"errors"

	"github.com/voicedoc/clinic-api/internal/audit"
	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/models"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	userID uint,
	reservationID uint,
) (*models.Reservation, error) {

	r, err := loadOwned(ctx, uc.repo, userID, reservationID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(r); err != nil {
		return nil, err
	}

	changed, err := uc.repo.TransitionStatus(
		ctx,
		r.ID,
		domain.StatusPending,
		domain.StatusCanceled,
		nil,
	)
	if err != nil {
		return nil, err
	}
	if !changed {
		return nil, httperr.ErrConflict(domain.CodeAlreadyFinalized)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reservation_canceled",
		Entity:   "reservation",
		EntityID: &r.ID,
	})

	return r, nil
}

// loadOwned fetches a reservation and checks that userID is its patient.
func loadOwned(
	ctx context.Context,
	repo domain.Repository,
	userID uint,
	reservationID uint,
) (*models.Reservation, error) {

	r, err := repo.GetReservation(ctx, reservationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrNotFound(domain.CodeReservationNotFound)
		}
		return nil, err
	}

	if r.UserID != userID {
		return nil, httperr.ErrForbidden(domain.CodeForbidden)
	}

	return r, nil
}
