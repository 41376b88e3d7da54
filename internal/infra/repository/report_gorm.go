package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) AppointmentExists(
	ctx context.Context,
	appointmentID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Count(&count).Error; err != nil {
		return false, httperr.Store("check appointment", err)
	}
	return count > 0, nil
}

func (r *ReportGormRepository) UpsertReport(
	ctx context.Context,
	rep *models.Report,
) (bool, error) {

	updateCols := []string{
		"diagnosis", "medicines", "notes",
		"symptoms", "follow_up_date", "updated_at",
	}
	if rep.FilePath != nil {
		updateCols = append(updateCols, "file_path")
	}

	var created bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "appointment_id"}},
			DoUpdates: clause.AssignmentColumns(updateCols),
		}).Create(rep).Error; err != nil {
			return err
		}

		// Only the first report flips the flag, so RowsAffected tells
		// an insert from an update regardless of dialect.
		res := tx.Model(&models.Appointment{}).
			Where("id = ? AND has_report = ?", rep.AppointmentID, false).
			Updates(map[string]any{
				"status":     appointment.StatusCompleted,
				"has_report": true,
			})
		if res.Error != nil {
			return res.Error
		}
		created = res.RowsAffected > 0

		// the id reported by an upsert is not reliable on every driver
		var stored models.Report
		if err := tx.Where("appointment_id = ?", rep.AppointmentID).First(&stored).Error; err != nil {
			return err
		}
		*rep = stored
		return nil
	})

	if err != nil {
		return false, httperr.Store("save report", err)
	}
	return created, nil
}

func (r *ReportGormRepository) GetByAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Report, error) {

	var rep models.Report
	err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&rep).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("report_not_found", "Report not found")
	}
	if err != nil {
		return nil, httperr.Store("get report", err)
	}
	return &rep, nil
}

// Compile-time check
var _ domain.Repository = (*ReportGormRepository)(nil)
