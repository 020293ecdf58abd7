package reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/voicedoc/clinic-api/internal/audit"
	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/models"
)

const (
	doctorID  = uint(1)
	patientID = uint(10)
)

func setupBooking() (*mockRepo, *mockImageStore, *CreateReservation) {
	repo := newMockRepo()
	repo.addDoctor(doctorID, 100, "김의사")
	repo.addWorkingDay(doctorID, day(0))
	repo.addWorkingDay(doctorID, day(1))
	repo.addSlots(doctorID, domain.Weekday(day(0)), "11:00", "12:00", "13:00", "14:00")
	repo.addSlots(doctorID, domain.Weekday(day(1)), "09:00")

	store := newMockImageStore()
	uc := NewCreateReservation(repo, store, nil, "UTC", zerolog.Nop())
	uc.now = func() time.Time { return fixedNow }
	return repo, store, uc
}

func bookingInput(date time.Time, hm string) CreateReservationInput {
	return CreateReservationInput{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date.Format("2006-01-02"),
		Time:      hm,
		Symptom:   "두통",
	}
}

func TestCreateReservation_Success(t *testing.T) {
	repo, store, uc := setupBooking()

	in := bookingInput(day(0), "11:00")
	in.Images = images(2)

	r, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID == 0 {
		t.Fatal("expected reservation id to be set")
	}
	if r.StatusID != domain.StatusPending.ID() {
		t.Errorf("expected pending status, got %d", r.StatusID)
	}

	stored := repo.reservations[r.ID]
	if len(stored.Images) != 2 {
		t.Errorf("expected 2 image rows, got %d", len(stored.Images))
	}
	for _, img := range stored.Images {
		if _, ok := store.saved[img.Image]; !ok {
			t.Errorf("image row %q has no stored object", img.Image)
		}
		if img.ReservationID != r.ID {
			t.Errorf("image row points at %d, want %d", img.ReservationID, r.ID)
		}
	}
}

type eventSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *eventSink) Log(ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func TestCreateReservation_AuditsImageNames(t *testing.T) {
	repo, store, _ := setupBooking()
	sink := &eventSink{}
	dispatcher := audit.NewDispatcher(sink, 10, zerolog.Nop())

	uc := NewCreateReservation(repo, store, dispatcher, "UTC", zerolog.Nop())
	uc.now = func() time.Time { return fixedNow }

	in := bookingInput(day(0), "11:00")
	in.Images = images(2)
	r, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dispatcher.Close()

	if len(sink.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Action != "reservation_created" || ev.EntityID == nil || *ev.EntityID != r.ID {
		t.Errorf("unexpected event %+v", ev)
	}
	meta, _ := ev.Metadata.(map[string]any)
	names, _ := meta["images"].([]string)
	if len(names) != 2 || names[0] != "photo0.jpg" || names[1] != "photo1.jpg" {
		t.Errorf("expected uploaded file names in metadata, got %v", meta["images"])
	}
}

func TestCreateReservation_NormalizesTime(t *testing.T) {
	_, _, uc := setupBooking()

	r, err := uc.Execute(context.Background(), bookingInput(day(1), "9:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Time != "09:00" {
		t.Errorf("expected normalized time 09:00, got %q", r.Time)
	}
}

func TestCreateReservation_SlotTakenThenFreedByCancel(t *testing.T) {
	repo, _, uc := setupBooking()

	first, err := uc.Execute(context.Background(), bookingInput(day(0), "11:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = uc.Execute(context.Background(), bookingInput(day(0), "11:00"))
	assertCode(t, err, domain.CodeSlotTaken)

	cancel := NewCancelReservation(repo, nil)
	if _, err := cancel.Execute(context.Background(), patientID, first.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if _, err := uc.Execute(context.Background(), bookingInput(day(0), "11:00")); err != nil {
		t.Fatalf("expected rebooking after cancel to succeed, got %v", err)
	}
}

func TestCreateReservation_CompletedBlocksSlot(t *testing.T) {
	repo, _, uc := setupBooking()
	repo.addReservation(models.Reservation{UserID: 99, DoctorID: doctorID, Date: day(0), Time: "12:00", StatusID: domain.StatusCompleted.ID()})

	_, err := uc.Execute(context.Background(), bookingInput(day(0), "12:00"))
	assertCode(t, err, domain.CodeSlotTaken)
}

func TestCreateReservation_PastDate(t *testing.T) {
	repo, _, uc := setupBooking()
	repo.addWorkingDay(doctorID, day(-1))
	repo.addSlots(doctorID, domain.Weekday(day(-1)), "11:00")

	_, err := uc.Execute(context.Background(), bookingInput(day(-1), "11:00"))
	assertCode(t, err, domain.CodePastDate)
}

func TestCreateReservation_ImageLimit(t *testing.T) {
	_, store, uc := setupBooking()

	in := bookingInput(day(0), "13:00")
	in.Images = images(7)
	_, err := uc.Execute(context.Background(), in)
	assertCode(t, err, domain.CodeTooManyImages)
	if store.calls != 0 {
		t.Errorf("expected no uploads for rejected request, got %d", store.calls)
	}

	in.Images = images(6)
	r, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("expected 6 images to be accepted, got %v", err)
	}
	if len(r.Images) != 6 {
		t.Errorf("expected 6 images, got %d", len(r.Images))
	}
}

func TestCreateReservation_ValidationOrder(t *testing.T) {
	_, _, uc := setupBooking()

	// Too many images wins over a past date.
	in := bookingInput(day(-3), "11:00")
	in.Images = images(7)
	_, err := uc.Execute(context.Background(), in)
	assertCode(t, err, domain.CodeTooManyImages)

	// A past date wins over a non-working day.
	_, err = uc.Execute(context.Background(), bookingInput(day(-3), "11:00"))
	assertCode(t, err, domain.CodePastDate)

	// A non-working day wins over a non-working time.
	_, err = uc.Execute(context.Background(), bookingInput(day(5), "03:00"))
	assertCode(t, err, domain.CodeNotWorkingDay)
}

func TestCreateReservation_NotWorkingTime(t *testing.T) {
	_, _, uc := setupBooking()

	_, err := uc.Execute(context.Background(), bookingInput(day(0), "15:00"))
	assertCode(t, err, domain.CodeNotWorkingTime)

	// 09:00 is offered on day(1)'s weekday only.
	_, err = uc.Execute(context.Background(), bookingInput(day(0), "09:00"))
	assertCode(t, err, domain.CodeNotWorkingTime)
}

func TestCreateReservation_InvalidInput(t *testing.T) {
	_, _, uc := setupBooking()

	in := bookingInput(day(0), "11:00")
	in.Date = "2024/01/15"
	_, err := uc.Execute(context.Background(), in)
	assertCode(t, err, domain.CodeInvalidDateOrTime)

	in = bookingInput(day(0), "eleven")
	_, err = uc.Execute(context.Background(), in)
	assertCode(t, err, domain.CodeInvalidDateOrTime)
}

func TestCreateReservation_UnknownDoctor(t *testing.T) {
	_, _, uc := setupBooking()

	in := bookingInput(day(0), "11:00")
	in.DoctorID = 404
	_, err := uc.Execute(context.Background(), in)
	assertCode(t, err, domain.CodeDoctorNotFound)
}

func TestCreateReservation_ImageRowFailureLeavesNothingBehind(t *testing.T) {
	repo, store, uc := setupBooking()
	repo.failImageInsert = true

	in := bookingInput(day(0), "11:00")
	in.Images = images(3)
	if _, err := uc.Execute(context.Background(), in); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.reservations) != 0 {
		t.Errorf("expected no reservation rows, got %d", len(repo.reservations))
	}
	if len(store.saved) != 0 {
		t.Errorf("expected uploaded objects to be removed, %d remain", len(store.saved))
	}
	if len(store.removed) != 3 {
		t.Errorf("expected 3 removals, got %d", len(store.removed))
	}
}

func TestCreateReservation_UploadFailureRemovesEarlierUploads(t *testing.T) {
	repo, store, uc := setupBooking()
	store.failOn = 2

	in := bookingInput(day(0), "11:00")
	in.Images = images(3)
	if _, err := uc.Execute(context.Background(), in); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.reservations) != 0 {
		t.Errorf("expected no reservation rows, got %d", len(repo.reservations))
	}
	if len(store.saved) != 0 {
		t.Errorf("expected first upload to be removed, %d remain", len(store.saved))
	}
}

func TestCreateReservation_UploadsDisabled(t *testing.T) {
	repo, _, _ := setupBooking()
	uc := NewCreateReservation(repo, nil, nil, "UTC", zerolog.Nop())
	uc.now = func() time.Time { return fixedNow }

	in := bookingInput(day(0), "11:00")
	in.Images = images(1)
	_, err := uc.Execute(context.Background(), in)
	assertCode(t, err, domain.CodeUploadsDisabled)

	// Without attachments booking still works.
	if _, err := uc.Execute(context.Background(), bookingInput(day(0), "11:00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateReservation_ConcurrentBookingsOneWins(t *testing.T) {
	repo, _, uc := setupBooking()

	const attempts = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Execute(context.Background(), bookingInput(day(0), "14:00")); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if success != 1 {
		t.Errorf("expected exactly one booking to succeed, got %d", success)
	}
	if n := len(repo.reservations); n != 1 {
		t.Errorf("expected 1 stored reservation, got %d", n)
	}
}
