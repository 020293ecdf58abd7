package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voicedoc/clinic-api/internal/auth"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/middleware"
)

func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// calendarDate builds a date from year, month and day-of-month values.
// Out of range values are rejected rather than normalized.
func calendarDate(year, month, day int) (time.Time, bool) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// identity returns the caller, answering 401 when none is attached.
func identity(c *gin.Context) (auth.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "missing_identity", "signin required")
	}
	return id, ok
}
