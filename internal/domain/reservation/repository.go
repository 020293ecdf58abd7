package reservation

import (
	"context"
	"io"
	"time"

	"github.com/voicedoc/clinic-api/internal/models"
)

type Repository interface {
	// -------- Doctor --------
	GetDoctor(
		ctx context.Context,
		doctorID uint,
	) (*models.Doctor, error)

	GetDoctorByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Doctor, error)

	// -------- Availability --------
	ListWorkingDays(
		ctx context.Context,
		doctorID uint,
		from time.Time,
		to time.Time,
	) ([]models.WorkingDay, error)

	HasWorkingDay(
		ctx context.Context,
		doctorID uint,
		date time.Time,
	) (bool, error)

	ListSlotTimes(
		ctx context.Context,
		doctorID uint,
		weekday int,
	) ([]string, error)

	ListTakenTimes(
		ctx context.Context,
		doctorID uint,
		date time.Time,
	) ([]string, error)

	IsSlotTaken(
		ctx context.Context,
		doctorID uint,
		date time.Time,
		hm string,
	) (bool, error)

	// -------- Reservation (create / conflict) --------

	// CreateReservation stores r and its images in one transaction. It
	// returns a slot_taken business error when an occupying reservation for
	// the same doctor, date and time already exists.
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
		images []models.ReservationImage,
	) error

	// -------- Reservation (read / state change) --------
	GetReservation(
		ctx context.Context,
		reservationID uint,
	) (*models.Reservation, error)

	// TransitionStatus moves a reservation from one status to another only if
	// it is still in the expected status. It reports whether a row changed.
	TransitionStatus(
		ctx context.Context,
		reservationID uint,
		from Status,
		to Status,
		opinion *string,
	) (bool, error)

	ListReservationsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Reservation, error)
}

// ImageStore persists uploaded reservation images and returns their keys.
type ImageStore interface {
	Save(ctx context.Context, folder string, r io.Reader) (string, error)
	Remove(ctx context.Context, key string) error
}
