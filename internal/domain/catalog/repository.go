package catalog

import (
	"context"

	"github.com/voicedoc/clinic-api/internal/models"
)

type Repository interface {
	ListSubjects(ctx context.Context) ([]models.Subject, error)

	// ListDoctorsBySubject returns one page of doctors with user, hospital
	// and subject loaded, plus the total number of matching doctors.
	ListDoctorsBySubject(
		ctx context.Context,
		subjectID uint,
		limit int,
		offset int,
	) ([]models.Doctor, int64, error)
}
