package handlers

import (
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	account "github.com/voicedoc/clinic-api/internal/domain/account"
	reservation "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/middleware"
)

// Handler-level error codes.
const (
	codeInvalidRequest = "invalid_request"
	codeInvalidID      = "invalid_id"
	codeInvalidWork    = "invalid_work"
	codeInternal       = "internal_error"
	codeInvalidUser    = "invalid_user"
)

var messages = map[string]string{
	codeInvalidRequest: "invalid request",
	codeInvalidID:      "invalid id",
	codeInvalidWork:    "work must be cancel or complete",
	codeInternal:       "internal server error",
	codeInvalidUser:    "invalid user",

	reservation.CodeTooManyImages:       "up to 6 images can be attached",
	reservation.CodePastDate:            "cannot reserve a past date",
	reservation.CodeStaleDate:           "past dates cannot be queried",
	reservation.CodeNotWorkingDay:       "doctor does not work on that day",
	reservation.CodeNotWorkingTime:      "doctor does not work at that time",
	reservation.CodeSlotTaken:           "reservation already exists at that time",
	reservation.CodeReservationNotFound: "reservation does not exist",
	reservation.CodeDoctorNotFound:      "doctor does not exist",
	reservation.CodeForbidden:           "not your reservation",
	reservation.CodeAlreadyFinalized:    "reservation is already finalized",
	reservation.CodeInvalidDateOrTime:   "invalid date or time",
	reservation.CodeInvalidMonth:        "invalid year or month",
	reservation.CodeImageUnsupported:    "unsupported image format",
	reservation.CodeUploadsDisabled:     "image upload is not available",

	account.CodeMissingName:     "must have user name",
	account.CodeMissingEmail:    "must have user email",
	account.CodeMissingIsDoctor: "must have user is_doctor",
	account.CodeMissingPassword: "must have user password",
	account.CodeInvalidEmail:    "invalid email format",
	account.CodeInvalidDomain:   "email domain does not exist",
	account.CodeInvalidPassword: "password needs 8 or more characters with a letter, a number and a special character",
	account.CodeEmailTaken:      "email already exists",
	account.CodeBadCredentials:  "check email or password",
	account.CodeBrowserRequired: "doctors must sign in from a web browser",
	account.CodeInvalidSession:  "invalid session",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}

func badRequest(c *gin.Context, code string) {
	httperr.BadRequest(c, code, messageFor(code))
}

// writeError answers with the status of a business error. Anything else is
// logged, reported to Sentry and hidden behind a 500.
func writeError(c *gin.Context, logger zerolog.Logger, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.Write(c, httperr.Status(be), be.Code, messageFor(be.Code))
		return
	}

	rid := c.GetString(middleware.ContextRequestID)
	logger.Error().
		Err(err).
		Str("request_id", rid).
		Str("route", c.FullPath()).
		Msg("request failed")

	hub := sentry.CurrentHub().Clone()
	hub.Scope().SetRequest(c.Request)
	hub.Scope().SetTag("request_id", rid)
	hub.CaptureException(err)

	httperr.Internal(c, codeInternal, messageFor(codeInternal))
}
