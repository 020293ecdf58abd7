package reservation

import "errors"

// Business error codes returned to clients.
const (
	CodeTooManyImages       = "too_many_images"
	CodePastDate            = "past_date"
	CodeStaleDate           = "stale_date"
	CodeNotWorkingDay       = "not_working_day"
	CodeNotWorkingTime      = "not_working_time"
	CodeSlotTaken           = "slot_taken"
	CodeReservationNotFound = "reservation_not_found"
	CodeDoctorNotFound      = "doctor_not_found"
	CodeForbidden           = "forbidden"
	CodeAlreadyFinalized    = "already_finalized"
	CodeInvalidDateOrTime   = "invalid_date_or_time"
	CodeInvalidMonth        = "invalid_month"
	CodeImageUnsupported    = "image_unsupported"
	CodeUploadsDisabled     = "uploads_disabled"
)

// MaxImages is the number of images a patient may attach to one reservation.
const MaxImages = 6

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("record not found")
