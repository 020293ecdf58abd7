package reservation

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/voicedoc/clinic-api/internal/audit"
	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/models"
	"github.com/voicedoc/clinic-api/internal/timezone"
)

const imageFolder = "reservation_images"

// ======================================================
// INPUT
// ======================================================

// Image is one attachment as uploaded. Filename is the client's name for
// it and is kept in the audit trail only.
type Image struct {
	Filename string
	Content  io.Reader
}

type CreateReservationInput struct {
	PatientID uint
	DoctorID  uint

	Date    string // YYYY-MM-DD
	Time    string // HH:MM
	Symptom string

	Images []Image
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo   domain.Repository
	images domain.ImageStore
	audit  *audit.Dispatcher
	logger zerolog.Logger
	now    func() time.Time
}

// NewCreateReservation builds the use case. images may be nil, in which case
// reservations with attachments are rejected.
func NewCreateReservation(
	repo domain.Repository,
	images domain.ImageStore,
	audit *audit.Dispatcher,
	tz string,
	logger zerolog.Logger,
) *CreateReservation {
	return &CreateReservation{
		repo:   repo,
		images: images,
		audit:  audit,
		logger: logger,
		now:    func() time.Time { return timezone.NowIn(tz) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1️⃣ Attachments
	// --------------------------------------------------
	if len(in.Images) > domain.MaxImages {
		return nil, httperr.ErrBusiness(domain.CodeTooManyImages)
	}
	if len(in.Images) > 0 && uc.images == nil {
		return nil, httperr.ErrBusiness(domain.CodeUploadsDisabled)
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeInvalidDateOrTime)
	}
	hm, err := domain.NormalizeTime(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeInvalidDateOrTime)
	}

	// --------------------------------------------------
	// 2️⃣ Date must not be in the past
	// --------------------------------------------------
	if date.Before(timezone.Date(uc.now())) {
		return nil, httperr.ErrTemporal(domain.CodePastDate)
	}

	// --------------------------------------------------
	// 3️⃣ Doctor works on that date
	// --------------------------------------------------
	if _, err := uc.repo.GetDoctor(ctx, in.DoctorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrNotFound(domain.CodeDoctorNotFound)
		}
		return nil, err
	}

	works, err := uc.repo.HasWorkingDay(ctx, in.DoctorID, date)
	if err != nil {
		return nil, err
	}
	if !works {
		return nil, httperr.ErrNotFound(domain.CodeNotWorkingDay)
	}

	// --------------------------------------------------
	// 4️⃣ Time is one of the weekday's slots
	// --------------------------------------------------
	times, err := uc.repo.ListSlotTimes(ctx, in.DoctorID, domain.Weekday(date))
	if err != nil {
		return nil, err
	}
	if !domain.ContainsTime(times, hm) {
		return nil, httperr.ErrNotFound(domain.CodeNotWorkingTime)
	}

	// --------------------------------------------------
	// 5️⃣ Slot is free (checked again inside the transaction)
	// --------------------------------------------------
	taken, err := uc.repo.IsSlotTaken(ctx, in.DoctorID, date, hm)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict(domain.CodeSlotTaken)
	}

	// --------------------------------------------------
	// 6️⃣ Upload images, then persist everything at once
	// --------------------------------------------------
	keys, err := uc.saveImages(ctx, in.Images)
	if err != nil {
		return nil, err
	}

	r := &models.Reservation{
		UserID:   in.PatientID,
		DoctorID: in.DoctorID,
		StatusID: domain.InitialStatus().ID(),
		Symptom:  in.Symptom,
		Date:     date,
		Time:     hm,
	}

	rows := make([]models.ReservationImage, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, models.ReservationImage{Image: k})
	}
	names := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		names = append(names, img.Filename)
	}

	if err := uc.repo.CreateReservation(ctx, r, rows); err != nil {
		uc.removeImages(keys)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.PatientID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &r.ID,
		Metadata: map[string]any{
			"doctor_id": in.DoctorID,
			"date":      in.Date,
			"time":      hm,
			"images":    names,
		},
	})

	return r, nil
}

func (uc *CreateReservation) saveImages(ctx context.Context, images []Image) ([]string, error) {
	keys := make([]string, 0, len(images))
	for _, img := range images {
		key, err := uc.images.Save(ctx, imageFolder, img.Content)
		if err != nil {
			uc.logger.Warn().Err(err).Str("filename", img.Filename).Msg("image upload failed")
			uc.removeImages(keys)
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// removeImages deletes uploaded objects whose reservation was not stored.
// It uses a fresh context since the request context may already be done.
func (uc *CreateReservation) removeImages(keys []string) {
	if len(keys) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, k := range keys {
		if err := uc.images.Remove(ctx, k); err != nil {
			uc.logger.Warn().Err(err).Str("key", k).Msg("failed to remove orphaned image")
		}
	}
}
