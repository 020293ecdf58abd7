package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	account "github.com/voicedoc/clinic-api/internal/domain/account"
	"github.com/voicedoc/clinic-api/internal/dto"
	"github.com/voicedoc/clinic-api/internal/httperr"
	"github.com/voicedoc/clinic-api/internal/httpresp"
	"github.com/voicedoc/clinic-api/internal/pagination"
)

type subjectLister interface {
	Execute(ctx context.Context) ([]dto.SubjectDTO, error)
}

type doctorLister interface {
	Execute(ctx context.Context, subjectID uint, page pagination.Params) ([]dto.DoctorCardDTO, int64, error)
}

// userNamer resolves the display name of the caller.
type userNamer interface {
	UserName(ctx context.Context, userID uint) (string, error)
}

type CatalogHandler struct {
	subjects subjectLister
	doctors  doctorLister
	users    userNamer
	logger   zerolog.Logger
}

func NewCatalogHandler(
	subjects subjectLister,
	doctors doctorLister,
	users userNamer,
	logger zerolog.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		subjects: subjects,
		doctors:  doctors,
		users:    users,
		logger:   logger,
	}
}

// GET /reservations/subject
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	subjects, err := h.subjects.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	name, err := h.users.UserName(c.Request.Context(), id.UserID)
	if errors.Is(err, account.ErrNotFound) {
		httperr.Unauthorized(c, codeInvalidUser, messageFor(codeInvalidUser))
		return
	}
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": subjects,
		"name":   name,
	})
}

// GET /reservations/subject/:id
func (h *CatalogHandler) ListDoctors(c *gin.Context) {
	subjectID, ok := parseID(c.Param("id"))
	if !ok {
		badRequest(c, codeInvalidID)
		return
	}

	page := pagination.FromContext(c)

	doctors, total, err := h.doctors.Execute(c.Request.Context(), subjectID, page)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	httpresp.List(c, doctors, total, page)
}
