package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// staff listings: booking snapshot first, registered user second
const staffListColumns = `
	appointments.id, appointments.dept, appointments.date, appointments.doctor_id,
	appointments.doctor_name, appointments.status, appointments.user_mobile,
	COALESCE(appointments.patient_name, patients.name) AS patient_name,
	COALESCE(appointments.patient_age, patients.age) AS patient_age,
	appointments.has_report, appointments.created_at, appointments.updated_at,
	patients.mobile AS patient_mobile`

const adminListColumns = `
	appointments.id, appointments.dept, appointments.date, appointments.doctor_id,
	COALESCE(doctors.name, appointments.doctor_name) AS doctor_name,
	appointments.status, appointments.user_mobile,
	COALESCE(appointments.patient_name, patients.name) AS patient_name,
	COALESCE(appointments.patient_age, patients.age) AS patient_age,
	appointments.has_report, appointments.created_at, appointments.updated_at,
	patients.mobile AS patient_mobile`

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctor(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var doctor models.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleDoctor).
		First(&doctor).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("doctor_not_found", "Doctor not found")
	}
	if err != nil {
		return nil, httperr.Store("get doctor", err)
	}
	return &doctor, nil
}

// --------------------------------------------------
// Appointment (create / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return httperr.Store("create appointment", r.db.WithContext(ctx).Create(ap).Error)
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).First(&ap, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found")
	}
	if err != nil {
		return nil, httperr.Store("get appointment", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {

	// Guarded on the status the caller read, so a report saved in between
	// is never overwritten.
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, string(from)).
		Updates(map[string]any{
			"status":      ap.Status,
			"doctor_id":   ap.DoctorID,
			"doctor_name": ap.DoctorName,
		})

	if res.Error != nil {
		return httperr.Store("update appointment", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Count(&count).Error; err != nil {
		return httperr.Store("update appointment", err)
	}
	if count == 0 {
		return httperr.ErrNotFound("appointment_not_found", "Appointment not found")
	}
	return domain.ErrStale
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return httperr.Store("delete appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("appointment_not_found", "Appointment not found")
	}
	return nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForPatient(
	ctx context.Context,
	mobile string,
) ([]dto.PatientAppointmentDTO, error) {

	var rows []dto.PatientAppointmentDTO
	err := r.db.WithContext(ctx).
		Table("appointments").
		Select("appointments.*, reports.follow_up_date").
		Joins("LEFT JOIN reports ON reports.appointment_id = appointments.id").
		Where("appointments.user_mobile = ?", mobile).
		Order("appointments.id DESC").
		Scan(&rows).Error

	if err != nil {
		return nil, httperr.Store("list patient appointments", err)
	}
	return rows, nil
}

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {

	var rows []dto.AppointmentListDTO
	err := r.db.WithContext(ctx).
		Table("appointments").
		Select(staffListColumns).
		Joins("LEFT JOIN users AS patients ON patients.mobile = appointments.user_mobile").
		Order("appointments.date DESC, appointments.id DESC").
		Scan(&rows).Error

	if err != nil {
		return nil, httperr.Store("list appointments", err)
	}
	return rows, nil
}

// ListForAdmin resolves the doctor through doctor_id and falls back to the
// stored name. limit <= 0 returns everything.
func (r *AppointmentGormRepository) ListForAdmin(
	ctx context.Context,
	limit int,
) ([]dto.AppointmentListDTO, error) {

	q := r.db.WithContext(ctx).
		Table("appointments").
		Select(adminListColumns).
		Joins("LEFT JOIN users AS patients ON patients.mobile = appointments.user_mobile").
		Joins("LEFT JOIN users AS doctors ON doctors.id = appointments.doctor_id").
		Order("appointments.date DESC, appointments.id DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []dto.AppointmentListDTO
	if err := q.Scan(&rows).Error; err != nil {
		return nil, httperr.Store("list admin appointments", err)
	}
	return rows, nil
}

func (r *AppointmentGormRepository) PatientHistory(
	ctx context.Context,
	mobile string,
) ([]dto.PatientHistoryDTO, error) {

	var rows []dto.PatientHistoryDTO
	err := r.db.WithContext(ctx).
		Table("appointments").
		Select(`appointments.*,
			reports.diagnosis, reports.medicines, reports.notes,
			reports.symptoms, reports.follow_up_date, reports.file_path`).
		Joins("LEFT JOIN reports ON reports.appointment_id = appointments.id").
		Where("appointments.user_mobile = ?", mobile).
		Order("appointments.date DESC, appointments.id DESC").
		Scan(&rows).Error

	if err != nil {
		return nil, httperr.Store("patient history", err)
	}
	return rows, nil
}

func (r *AppointmentGormRepository) CountAppointments(
	ctx context.Context,
	onDate string,
) (int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})
	if onDate != "" {
		q = q.Where("date = ?", onDate)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, httperr.Store("count appointments", err)
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
