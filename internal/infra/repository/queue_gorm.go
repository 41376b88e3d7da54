package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/queue"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type QueueGormRepository struct {
	db *gorm.DB
}

func NewQueueGormRepository(db *gorm.DB) *QueueGormRepository {
	return &QueueGormRepository{db: db}
}

func (r *QueueGormRepository) ListDoctors(
	ctx context.Context,
) ([]models.User, error) {

	var doctors []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleDoctor).
		Order("id ASC").
		Find(&doctors).Error; err != nil {
		return nil, httperr.Store("list doctors", err)
	}
	return doctors, nil
}

// UpdateDoctorStatus writes only the supplied fields of one doctor row.
func (r *QueueGormRepository) UpdateDoctorStatus(
	ctx context.Context,
	doctorID uint,
	upd domain.DoctorStatusUpdate,
) error {

	var doctor models.User
	err := r.db.WithContext(ctx).
		Select("id").
		Where("id = ? AND role = ?", doctorID, models.RoleDoctor).
		First(&doctor).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound("doctor_not_found", "Doctor not found")
	}
	if err != nil {
		return httperr.Store("get doctor", err)
	}

	fields := map[string]any{}
	if upd.Status != nil {
		fields["status"] = *upd.Status
	}
	if upd.QueueCurrent != nil {
		fields["queue_current"] = *upd.QueueCurrent
	}
	if upd.QueueTotal != nil {
		fields["queue_total"] = *upd.QueueTotal
	}
	if len(fields) == 0 {
		return nil
	}

	return httperr.Store("update doctor status", r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", doctorID).
		Updates(fields).Error)
}

func (r *QueueGormRepository) GetSetting(
	ctx context.Context,
	key string,
) (string, error) {

	var s models.SystemSetting
	err := r.db.WithContext(ctx).
		Where(&models.SystemSetting{Key: key}).
		First(&s).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", httperr.Store("get setting", err)
	}
	return s.Value, nil
}

// Compile-time check
var _ domain.Repository = (*QueueGormRepository)(nil)
