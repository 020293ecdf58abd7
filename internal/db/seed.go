package db

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "github.com/voicedoc/clinic-api/internal/domain/reservation"
	"github.com/voicedoc/clinic-api/internal/models"
	"github.com/voicedoc/clinic-api/internal/timezone"
)

const seedPassword = "voicedoc1!"

var seedSubjects = []models.Subject{
	{Name: "내과", Image: "subject_images/internal.webp"},
	{Name: "이비인후과", Image: "subject_images/ent.webp"},
	{Name: "피부과", Image: "subject_images/dermatology.webp"},
}

var seedTimes = []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}

// Seed inserts a small demo clinic: one hospital, a few subjects, one doctor
// per subject working weekdays for the next four weeks, and one patient. It
// does nothing when subjects already exist.
func Seed(db *gorm.DB, tz string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Subject{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		hospital := models.Hospital{Name: "보이스닥 의원"}
		if err := tx.Create(&hospital).Error; err != nil {
			return err
		}

		subjects := append([]models.Subject(nil), seedSubjects...)
		if err := tx.Create(&subjects).Error; err != nil {
			return err
		}

		patient := models.User{
			Name:         "김환자",
			Email:        "patient@voicedoc.kr",
			PasswordHash: string(hash),
			Role:         models.RolePatient,
		}
		if err := tx.Create(&patient).Error; err != nil {
			return err
		}

		today := timezone.Today(tz)

		for i := range subjects {
			user := models.User{
				Name:         fmt.Sprintf("%s 의사", subjects[i].Name),
				Email:        fmt.Sprintf("doctor%d@voicedoc.kr", i+1),
				PasswordHash: string(hash),
				Role:         models.RoleDoctor,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			doctor := models.Doctor{
				UserID:       user.ID,
				HospitalID:   &hospital.ID,
				SubjectID:    &subjects[i].ID,
				ProfileImage: fmt.Sprintf("doctor_profile_images/%d.webp", i+1),
			}
			if err := tx.Create(&doctor).Error; err != nil {
				return err
			}

			if err := seedSchedule(tx, doctor.ID, today); err != nil {
				return err
			}
		}

		return nil
	})
}

func seedSchedule(tx *gorm.DB, doctorID uint, from time.Time) error {
	var days []models.WorkingDay
	for d := 0; d < 28; d++ {
		date := from.AddDate(0, 0, d)
		if domain.Weekday(date) < 5 {
			days = append(days, models.WorkingDay{DoctorID: doctorID, Date: date})
		}
	}
	if err := tx.Create(&days).Error; err != nil {
		return err
	}

	var slots []models.WorkingTimeSlot
	for wd := 0; wd < 5; wd++ {
		for _, t := range seedTimes {
			slots = append(slots, models.WorkingTimeSlot{DoctorID: doctorID, Weekday: wd, Time: t})
		}
	}
	return tx.Create(&slots).Error
}
