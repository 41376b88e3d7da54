package report

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository interface {
	AppointmentExists(
		ctx context.Context,
		appointmentID uint,
	) (bool, error)

	// UpsertReport inserts or updates the single report of an appointment.
	// A nil FilePath keeps whatever file was stored before. created is true
	// only for the first report, which also completes the appointment.
	UpsertReport(
		ctx context.Context,
		rep *models.Report,
	) (created bool, err error)

	GetByAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Report, error)
}
