package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type seedDoctor struct {
	name, department, mobile, room, description string
}

var demoDoctors = []seedDoctor{
	{"Dr. Nikhil Patil", "General Physician", "admin1", "101", "Expert in general health and primary care."},
	{"Dr. Sagar Patil", "Dental", "admin2", "205", "Specialist in dental surgery and oral health."},
	{"Dr. Pratiksha Patil", "ENT", "admin3", "310", "Specializes in ear, nose, and throat disorders."},
	{"Dr. Sharma", "Orthopedic", "admin4", "D-12", "Expert in bone and joint treatments."},
	{"Dr. Tiwari", "Cardiology", "admin5", "ICU-1", "Specialist in heart diseases and surgery."},
	{"Dr. Nethe", "Pediatrics", "admin6", "OPD-4", "Child healthcare specialist."},
}

// Seed inserts the default settings and, on an empty users table, the demo
// patient and doctors. Running it twice changes nothing.
func Seed(ctx context.Context, db *gorm.DB) (seeded bool, err error) {
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.SystemSetting{Key: models.SettingWaitTime, Value: "15"}).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		demoAge := 25
		users := []models.User{{
			Name:   "Demo User",
			Age:    &demoAge,
			Mobile: "9876543210",
			Role:   models.RolePatient,
		}}

		for _, d := range demoDoctors {
			age := 45
			users = append(users, models.User{
				Name:        d.name,
				Age:         &age,
				Mobile:      d.mobile,
				Role:        models.RoleDoctor,
				Department:  strPtr(d.department),
				Status:      strPtr("Available"),
				RoomNumber:  strPtr(d.room),
				Description: strPtr(d.description),
			})
		}

		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		seeded = true
		return nil
	})
	return seeded, err
}

func strPtr(s string) *string {
	return &s
}
