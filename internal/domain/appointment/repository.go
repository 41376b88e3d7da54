package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ErrStale is returned by UpdateAppointment when the row no longer has the
// status it was read with.
var ErrStale = errors.New("appointment changed since it was read")

type Repository interface {
	// -------- Doctor --------
	GetDoctor(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Appointment (create / state change) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		from Status,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Listings --------
	ListForPatient(
		ctx context.Context,
		mobile string,
	) ([]dto.PatientAppointmentDTO, error)

	ListAll(
		ctx context.Context,
	) ([]dto.AppointmentListDTO, error)

	ListForAdmin(
		ctx context.Context,
		limit int,
	) ([]dto.AppointmentListDTO, error)

	PatientHistory(
		ctx context.Context,
		mobile string,
	) ([]dto.PatientHistoryDTO, error)

	CountAppointments(
		ctx context.Context,
		onDate string,
	) (int64, error)
}
