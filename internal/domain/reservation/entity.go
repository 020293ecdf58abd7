package reservation

import "github.com/voicedoc/clinic-api/internal/models"

// ===============================
// Domain Actions
// ===============================

// CurrentStatus resolves the stored status id of r.
func CurrentStatus(r *models.Reservation) (Status, error) {
	return StatusFromID(r.StatusID)
}

func Cancel(r *models.Reservation) error {
	current, err := CurrentStatus(r)
	if err != nil {
		return err
	}
	if err := CanCancel(current); err != nil {
		return err
	}

	r.StatusID = StatusCanceled.ID()
	return nil
}

func Complete(r *models.Reservation, opinion string) error {
	current, err := CurrentStatus(r)
	if err != nil {
		return err
	}
	if err := CanComplete(current); err != nil {
		return err
	}

	r.StatusID = StatusCompleted.ID()
	r.Opinion = opinion
	return nil
}
