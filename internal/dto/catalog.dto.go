package dto

import "github.com/voicedoc/clinic-api/internal/models"

type SubjectDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type DoctorCardDTO struct {
	ID             uint   `json:"id"`
	DoctorName     string `json:"doctor_name"`
	HospitalName   string `json:"hospital_name"`
	SubjectName    string `json:"subject_name"`
	DoctorImageURL string `json:"doctor_image_url"`
}

func NewSubjects(subjects []models.Subject, baseURL string) []SubjectDTO {
	out := make([]SubjectDTO, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, SubjectDTO{
			ID:       s.ID,
			Name:     s.Name,
			ImageURL: FileURL(baseURL, s.Image),
		})
	}
	return out
}

func NewDoctorCards(doctors []models.Doctor, baseURL string) []DoctorCardDTO {
	out := make([]DoctorCardDTO, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, DoctorCardDTO{
			ID:             d.ID,
			DoctorName:     d.User.Name,
			HospitalName:   d.Hospital.Name,
			SubjectName:    d.Subject.Name,
			DoctorImageURL: FileURL(baseURL, d.ProfileImage),
		})
	}
	return out
}
