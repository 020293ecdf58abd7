package reservation

import (
	"fmt"

	"github.com/voicedoc/clinic-api/internal/httperr"
)

// ===============================
// Reservation Status
// ===============================

// Status mirrors the rows of the statuses table; the value is the row id.
type Status uint

const (
	StatusPending   Status = 1
	StatusCompleted Status = 2
	StatusCanceled  Status = 3
)

var statusNames = map[Status]string{
	StatusPending:   "진료대기",
	StatusCompleted: "진료완료",
	StatusCanceled:  "진료취소",
}

var statusCodes = map[Status]string{
	StatusPending:   "pending",
	StatusCompleted: "completed",
	StatusCanceled:  "canceled",
}

// AllStatuses lists every status in id order, used to seed the lookup table.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusCompleted, StatusCanceled}
}

// StatusFromID resolves a statuses row id.
func StatusFromID(id uint) (Status, error) {
	s := Status(id)
	if _, ok := statusNames[s]; !ok {
		return 0, fmt.Errorf("unknown reservation status id %d", id)
	}
	return s, nil
}

func (s Status) ID() uint {
	return uint(s)
}

// Name is the display name shown to patients.
func (s Status) Name() string {
	return statusNames[s]
}

func (s Status) String() string {
	if code, ok := statusCodes[s]; ok {
		return code
	}
	return fmt.Sprintf("status(%d)", uint(s))
}

// Occupies reports whether a reservation in this status holds its slot.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusCompleted
}

// ===============================
// Validations
// ===============================

func CanCancel(current Status) error {
	if current != StatusPending {
		return httperr.ErrConflict(CodeAlreadyFinalized)
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusPending {
		return httperr.ErrConflict(CodeAlreadyFinalized)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
