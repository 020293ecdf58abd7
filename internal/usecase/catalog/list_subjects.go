package catalog

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/voicedoc/clinic-api/internal/domain/catalog"
	"github.com/voicedoc/clinic-api/internal/dto"
)

// SubjectCache keeps the projected subject list between requests.
type SubjectCache interface {
	GetSubjects(ctx context.Context) ([]dto.SubjectDTO, bool, error)
	SetSubjects(ctx context.Context, subjects []dto.SubjectDTO) error
}

type ListSubjects struct {
	repo         domain.Repository
	cache        SubjectCache
	mediaBaseURL string
	logger       zerolog.Logger
}

// NewListSubjects builds the use case; cache may be nil.
func NewListSubjects(
	repo domain.Repository,
	cache SubjectCache,
	mediaBaseURL string,
	logger zerolog.Logger,
) *ListSubjects {
	return &ListSubjects{
		repo:         repo,
		cache:        cache,
		mediaBaseURL: mediaBaseURL,
		logger:       logger,
	}
}

func (uc *ListSubjects) Execute(ctx context.Context) ([]dto.SubjectDTO, error) {
	if uc.cache != nil {
		cached, ok, err := uc.cache.GetSubjects(ctx)
		if err != nil {
			uc.logger.Warn().Err(err).Msg("subject cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	subjects, err := uc.repo.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}

	out := dto.NewSubjects(subjects, uc.mediaBaseURL)

	if uc.cache != nil {
		if err := uc.cache.SetSubjects(ctx, out); err != nil {
			uc.logger.Warn().Err(err).Msg("subject cache write failed")
		}
	}

	return out, nil
}
