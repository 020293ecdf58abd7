package reservation

import (
	"context"

	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/dto"
)

type ListMyReservations struct {
	repo domain.Repository
}

func NewListMyReservations(repo domain.Repository) *ListMyReservations {
	return &ListMyReservations{repo: repo}
}

func (uc *ListMyReservations) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.ReservationListItemDTO, error) {

	rs, err := uc.repo.ListReservationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return dto.NewReservationList(rs), nil
}
