package models

import "time"

type Hospital struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:30;not null" json:"name"`
}

type Subject struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:30;not null" json:"name"`
	Image string `gorm:"size:255" json:"image"`
}

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	HospitalID *uint    `json:"hospital_id"`
	Hospital   Hospital `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"hospital"`

	SubjectID *uint   `gorm:"index" json:"subject_id"`
	Subject   Subject `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"subject"`

	ProfileImage string `gorm:"size:255" json:"profile_image"`

	WorkingDays      []WorkingDay      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	WorkingTimeSlots []WorkingTimeSlot `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
