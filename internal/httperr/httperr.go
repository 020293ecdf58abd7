package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Status maps a business error to its HTTP status. Missing working days and
// times are reported as 400 because clients treat them as bad input.
func Status(be BusinessError) int {
	switch be.Kind {
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		if be.Code == "not_working_day" || be.Code == "not_working_time" {
			return http.StatusBadRequest
		}
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
