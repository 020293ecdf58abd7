package reservation

import (
	"context"

	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/dto"
)

type GetReservationDetail struct {
	repo         domain.Repository
	mediaBaseURL string
}

func NewGetReservationDetail(
	repo domain.Repository,
	mediaBaseURL string,
) *GetReservationDetail {
	return &GetReservationDetail{
		repo:         repo,
		mediaBaseURL: mediaBaseURL,
	}
}

func (uc *GetReservationDetail) Execute(
	ctx context.Context,
	userID uint,
	reservationID uint,
) (*dto.ReservationDetailDTO, error) {

	r, err := loadOwned(ctx, uc.repo, userID, reservationID)
	if err != nil {
		return nil, err
	}

	out := dto.NewReservationDetail(r, uc.mediaBaseURL)
	return &out, nil
}
