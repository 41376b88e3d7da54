package dto

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

// PatientAppointmentDTO is a patient's own appointment plus the follow-up
// date of its report, when one exists.
type PatientAppointmentDTO struct {
	models.Appointment
	FollowUpDate *string `json:"follow_up_date"`
}

// AppointmentListDTO is the staff view: patient name/age fall back to the
// registered user when the booking carried no snapshot.
type AppointmentListDTO struct {
	models.Appointment
	PatientMobile *string `json:"patient_mobile"`
}

type PatientHistoryDTO struct {
	models.Appointment
	Diagnosis    *string `json:"diagnosis"`
	Medicines    *string `json:"medicines"`
	Notes        *string `json:"notes"`
	Symptoms     *string `json:"symptoms"`
	FollowUpDate *string `json:"follow_up_date"`
	FilePath     *string `json:"file_path"`
}
