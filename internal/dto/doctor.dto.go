package dto

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

// DoctorDTO is the public directory entry of a doctor.
type DoctorDTO struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Mobile       string  `json:"mobile"`
	Department   *string `json:"department"`
	Status       *string `json:"status"`
	QueueCurrent int     `json:"queue_current"`
	QueueTotal   int     `json:"queue_total"`
	RoomNumber   *string `json:"room_number"`
	Description  *string `json:"description"`
}

func NewDoctorDTO(u models.User) DoctorDTO {
	return DoctorDTO{
		ID:           u.ID,
		Name:         u.Name,
		Mobile:       u.Mobile,
		Department:   u.Department,
		Status:       u.Status,
		QueueCurrent: u.QueueCurrent,
		QueueTotal:   u.QueueTotal,
		RoomNumber:   u.RoomNumber,
		Description:  u.Description,
	}
}

func NewDoctorDTOs(users []models.User) []DoctorDTO {
	out := make([]DoctorDTO, 0, len(users))
	for _, u := range users {
		out = append(out, NewDoctorDTO(u))
	}
	return out
}
