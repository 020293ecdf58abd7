package catalog

import (
	"context"

	domain "github.com/voicedoc/clinic-api/internal/domain/catalog"
	"github.com/voicedoc/clinic-api/internal/dto"
	"github.com/voicedoc/clinic-api/internal/pagination"
)

type ListDoctorsBySubject struct {
	repo         domain.Repository
	mediaBaseURL string
}

func NewListDoctorsBySubject(
	repo domain.Repository,
	mediaBaseURL string,
) *ListDoctorsBySubject {
	return &ListDoctorsBySubject{
		repo:         repo,
		mediaBaseURL: mediaBaseURL,
	}
}

func (uc *ListDoctorsBySubject) Execute(
	ctx context.Context,
	subjectID uint,
	page pagination.Params,
) ([]dto.DoctorCardDTO, int64, error) {

	doctors, total, err := uc.repo.ListDoctorsBySubject(ctx, subjectID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}

	return dto.NewDoctorCards(doctors, uc.mediaBaseURL), total, nil
}
