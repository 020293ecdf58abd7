package models

import "time"

// WorkingDay marks a calendar date on which the doctor takes bookings.
type WorkingDay struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	DoctorID uint      `gorm:"not null;uniqueIndex:idx_working_days_doctor_date" json:"doctor_id"`
	Date     time.Time `gorm:"type:date;not null;uniqueIndex:idx_working_days_doctor_date" json:"date"`
}

// WorkingTimeSlot is one bookable time on a weekday (0=Monday .. 6=Sunday).
type WorkingTimeSlot struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	DoctorID uint   `gorm:"not null;uniqueIndex:idx_working_time_slots_key" json:"doctor_id"`
	Weekday  int    `gorm:"not null;uniqueIndex:idx_working_time_slots_key" json:"weekday"`
	Time     string `gorm:"size:5;not null;uniqueIndex:idx_working_time_slots_key" json:"time"`
}
