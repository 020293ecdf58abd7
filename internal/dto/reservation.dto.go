package dto

import (
	"time"

	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/models"
)

type ReservationDetailDTO struct {
	ID           uint     `json:"id"`
	DoctorName   string   `json:"doctor_name"`
	HospitalName string   `json:"hospital_name"`
	Status       string   `json:"status"`
	Images       []string `json:"images"`
	Symptom      string   `json:"symptom"`
	Opinion      string   `json:"opinion"`
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	Display      string   `json:"display"`
}

type ReservationListItemDTO struct {
	ID           uint      `json:"id"`
	DoctorName   string    `json:"doctor_name"`
	HospitalName string    `json:"hospital_name"`
	Status       string    `json:"status"`
	Display      string    `json:"display"`
	CreatedAt    time.Time `json:"created_at"`
}

func statusName(r *models.Reservation) string {
	s, err := domain.StatusFromID(r.StatusID)
	if err != nil {
		return r.Status.Name
	}
	return s.Name()
}

// NewReservationDetail projects a reservation loaded with its doctor and
// images.
func NewReservationDetail(r *models.Reservation, baseURL string) ReservationDetailDTO {
	images := make([]string, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, FileURL(baseURL, img.Image))
	}

	return ReservationDetailDTO{
		ID:           r.ID,
		DoctorName:   r.Doctor.User.Name,
		HospitalName: r.Doctor.Hospital.Name,
		Status:       statusName(r),
		Images:       images,
		Symptom:      r.Symptom,
		Opinion:      r.Opinion,
		Date:         r.Date.Format("2006-01-02"),
		Time:         r.Time,
		Display:      domain.FormatReservationTime(r.Date, r.Time),
	}
}

func NewReservationList(rs []models.Reservation) []ReservationListItemDTO {
	out := make([]ReservationListItemDTO, 0, len(rs))
	for i := range rs {
		r := &rs[i]
		out = append(out, ReservationListItemDTO{
			ID:           r.ID,
			DoctorName:   r.Doctor.User.Name,
			HospitalName: r.Doctor.Hospital.Name,
			Status:       statusName(r),
			Display:      domain.FormatReservationTime(r.Date, r.Time),
			CreatedAt:    r.CreatedAt,
		})
	}
	return out
}
