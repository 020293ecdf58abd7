package models

import "time"

type ReservationStatus struct {
	ID   uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"size:10;not null" json:"name"`
}

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DoctorID uint   `gorm:"not null;index:idx_reservations_doctor_date" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StatusID uint              `gorm:"not null" json:"status_id"`
	Status   ReservationStatus `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Symptom string `gorm:"size:1000" json:"symptom"`
	Opinion string `gorm:"size:1000" json:"opinion"`

	Date time.Time `gorm:"type:date;not null;index:idx_reservations_doctor_date" json:"date"`
	Time string    `gorm:"size:5;not null" json:"time"`

	Images []ReservationImage `gorm:"constraint:OnDelete:CASCADE;" json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReservationImage struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ReservationID uint   `gorm:"not null;index" json:"reservation_id"`
	Image         string `gorm:"size:255;not null" json:"image"`
}
