package dto

type AdminStatsDTO struct {
	Doctors        int64                `json:"doctors"`
	Patients       int64                `json:"patients"`
	Appointments   int64                `json:"appointments"`
	Today          int64                `json:"today"`
	RecentActivity []AppointmentListDTO `json:"recent_activity"`
}
