package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const (
	MigrationSuccess = "Success"
	MigrationFailed  = "Failed"
)

// MigrationResult is the outcome of Migrate. It is kept by the caller and
// served read-only by the health endpoint.
type MigrationResult struct {
	Status     string    `json:"status"`
	Dialect    string    `json:"dialect"`
	Tables     []string  `json:"tables"`
	Error      string    `json:"error,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}

func (r MigrationResult) OK() bool {
	return r.Status == MigrationSuccess
}

func allModels() []any {
	return []any{
		&models.User{},
		&models.Appointment{},
		&models.Report{},
		&models.Message{},
		&models.SystemSetting{},
		&models.AuditLog{},
	}
}

func Migrate(db *gorm.DB) MigrationResult {
	res := MigrationResult{Dialect: db.Dialector.Name()}

	for _, m := range allModels() {
		if err := db.AutoMigrate(m); err != nil {
			res.Status = MigrationFailed
			res.Error = err.Error()
			res.FinishedAt = time.Now().UTC()
			return res
		}
		if stmt := (&gorm.Statement{DB: db}); stmt.Parse(m) == nil {
			res.Tables = append(res.Tables, stmt.Schema.Table)
		}
	}

	res.Status = MigrationSuccess
	res.FinishedAt = time.Now().UTC()
	return res
}
