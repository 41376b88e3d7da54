package models

import "time"

// Report is the visit report of a single appointment.
type Report struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"uniqueIndex;not null" json:"appointment_id"`

	Diagnosis    string  `gorm:"type:text" json:"diagnosis"`
	Medicines    string  `gorm:"type:text" json:"medicines"`
	Notes        string  `gorm:"type:text" json:"notes"`
	Symptoms     *string `gorm:"type:text" json:"symptoms"`
	FollowUpDate *string `gorm:"size:20" json:"follow_up_date"`
	FilePath     *string `gorm:"size:255" json:"file_path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
