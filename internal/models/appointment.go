package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Dept string `gorm:"size:100;not null" json:"dept"`
	Date string `gorm:"size:20;not null;index" json:"date"`

	DoctorID   *uint   `gorm:"index" json:"doctor_id"`
	DoctorName *string `gorm:"size:100" json:"doctor_name"`

	Status string `gorm:"size:20;default:'Scheduled'" json:"status"`

	UserMobile  string  `gorm:"size:20;not null;index" json:"user_mobile"`
	PatientName *string `gorm:"size:100" json:"patient_name"`
	PatientAge  *int    `json:"patient_age"`

	HasReport bool `gorm:"default:false" json:"has_report"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
