package models

import "time"

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// User is both patient and doctor; the mobile number is the only identity.
type User struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Age    *int   `json:"age"`
	Mobile string `gorm:"size:20;uniqueIndex;not null" json:"mobile"`
	Role   string `gorm:"size:20;default:'patient';index" json:"role"`

	// Doctor-only fields.
	Department   *string `gorm:"size:100" json:"department"`
	Status       *string `gorm:"size:20" json:"status"`
	QueueCurrent int     `gorm:"default:0" json:"queue_current"`
	QueueTotal   int     `gorm:"default:0" json:"queue_total"`
	RoomNumber   *string `gorm:"size:20" json:"room_number"`
	Description  *string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}
