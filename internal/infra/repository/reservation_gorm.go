package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/models"
)

const pgUniqueViolation = "23505"

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// occupying restricts a reservation query to statuses that hold a slot.
func occupying(db *gorm.DB) *gorm.DB {
	return db.Where("status_id <> ?", domain.StatusCanceled.ID())
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *ReservationGormRepository) GetDoctor(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var d models.Doctor
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Hospital").
		First(&d, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

func (r *ReservationGormRepository) GetDoctorByUserID(
	ctx context.Context,
	userID uint,
) (*models.Doctor, error) {

	var d models.Doctor
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&d).Error; err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ReservationGormRepository) ListWorkingDays(
	ctx context.Context,
	doctorID uint,
	from time.Time,
	to time.Time,
) ([]models.WorkingDay, error) {

	var days []models.WorkingDay
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND date >= ? AND date < ?", doctorID, from, to).
		Order("date ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (r *ReservationGormRepository) HasWorkingDay(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WorkingDay{}).
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReservationGormRepository) ListSlotTimes(
	ctx context.Context,
	doctorID uint,
	weekday int,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.WorkingTimeSlot{}).
		Where("doctor_id = ? AND weekday = ?", doctorID, weekday).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

func (r *ReservationGormRepository) ListTakenTimes(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Scopes(occupying).
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

func (r *ReservationGormRepository) IsSlotTaken(
	ctx context.Context,
	doctorID uint,
	date time.Time,
	hm string,
) (bool, error) {
	return slotTaken(r.db.WithContext(ctx), doctorID, date, hm)
}

func slotTaken(db *gorm.DB, doctorID uint, date time.Time, hm string) (bool, error) {
	var count int64
	if err := db.
		Model(&models.Reservation{}).
		Scopes(occupying).
		Where("doctor_id = ? AND date = ? AND time = ?", doctorID, date, hm).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Reservation (create / conflict)
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
	images []models.ReservationImage,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Serializes bookings for one doctor and date.
		var day models.WorkingDay
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("doctor_id = ? AND date = ?", res.DoctorID, res.Date).
			First(&day).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound(domain.CodeNotWorkingDay)
			}
			return err
		}

		taken, err := slotTaken(tx, res.DoctorID, res.Date, res.Time)
		if err != nil {
			return err
		}
		if taken {
			return httperr.ErrConflict(domain.CodeSlotTaken)
		}

		if err := tx.Omit(clause.Associations).Create(res).Error; err != nil {
			return err
		}

		if len(images) == 0 {
			return nil
		}
		for i := range images {
			images[i].ReservationID = res.ID
		}
		if err := tx.Create(&images).Error; err != nil {
			return err
		}
		res.Images = images
		return nil
	})

	// The partial unique index is the last line against a concurrent insert.
	if isUniqueViolation(err) {
		return httperr.ErrConflict(domain.CodeSlotTaken)
	}
	return err
}

// --------------------------------------------------
// Reservation (read / state change)
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Status").
		Preload("Images").
		Preload("Doctor.User").
		Preload("Doctor.Hospital").
		First(&res, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &res, nil
}

func (r *ReservationGormRepository) TransitionStatus(
	ctx context.Context,
	id uint,
	from domain.Status,
	to domain.Status,
	opinion *string,
) (bool, error) {

	updates := map[string]any{"status_id": to.ID()}
	if opinion != nil {
		updates["opinion"] = *opinion
	}

	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ? AND status_id = ?", id, from.ID()).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *ReservationGormRepository) ListReservationsByUser(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {

	var rs []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Status").
		Preload("Doctor.User").
		Preload("Doctor.Hospital").
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&rs).Error; err != nil {
		return nil, err
	}
	return rs, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
