package models

import "time"

type Message struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;default:'Anonymous'" json:"name"`
	Subject string `gorm:"size:200" json:"subject"`
	Message string `gorm:"type:text" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
