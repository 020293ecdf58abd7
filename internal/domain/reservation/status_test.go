package reservation

import (
	"testing"

	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/models"
)

func TestStatusFromID(t *testing.T) {
	for _, s := range AllStatuses() {
		got, err := StatusFromID(s.ID())
		if err != nil || got != s {
			t.Errorf("StatusFromID(%d) = %v, %v", s.ID(), got, err)
		}
	}

	if _, err := StatusFromID(9); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestStatusOccupies(t *testing.T) {
	if !StatusPending.Occupies() || !StatusCompleted.Occupies() {
		t.Error("pending and completed reservations must hold their slot")
	}
	if StatusCanceled.Occupies() {
		t.Error("canceled reservations must release their slot")
	}
}

func TestStatusNames(t *testing.T) {
	want := map[Status]string{
		StatusPending:   "진료대기",
		StatusCompleted: "진료완료",
		StatusCanceled:  "진료취소",
	}
	for s, name := range want {
		if s.Name() != name {
			t.Errorf("%s.Name() = %q, want %q", s, s.Name(), name)
		}
	}
}

func TestCancel(t *testing.T) {
	r := &models.Reservation{StatusID: StatusPending.ID()}
	if err := Cancel(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.StatusID != StatusCanceled.ID() {
		t.Errorf("expected canceled, got %d", r.StatusID)
	}

	for _, s := range []Status{StatusCompleted, StatusCanceled} {
		r := &models.Reservation{StatusID: s.ID()}
		if err := Cancel(r); !httperr.IsBusiness(err, CodeAlreadyFinalized) {
			t.Errorf("cancel from %s: expected already_finalized, got %v", s, err)
		}
		if r.StatusID != s.ID() {
			t.Errorf("cancel from %s changed status", s)
		}
	}
}

func TestComplete(t *testing.T) {
	r := &models.Reservation{StatusID: StatusPending.ID()}
	if err := Complete(r, "감기"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.StatusID != StatusCompleted.ID() || r.Opinion != "감기" {
		t.Errorf("unexpected reservation %+v", r)
	}

	r = &models.Reservation{StatusID: StatusCanceled.ID()}
	if err := Complete(r, "x"); !httperr.IsBusiness(err, CodeAlreadyFinalized) {
		t.Errorf("expected already_finalized, got %v", err)
	}
}
