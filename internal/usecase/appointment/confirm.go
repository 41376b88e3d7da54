package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute confirms the appointment and, when doctorID is given, assigns
// that doctor. Confirming twice is a no-op.
func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	doctorID *uint,
) (*models.Appointment, error) {

	var doctor *models.User

	ap, changed, err := applyChange(ctx, uc.repo, appointmentID, func(ap *models.Appointment) (bool, error) {
		changed, err := domain.Confirm(ap)
		if err != nil || doctorID == nil {
			return changed, err
		}

		if doctor == nil {
			doctor, err = uc.repo.GetDoctor(ctx, *doctorID)
			if httperr.IsKind(err, httperr.KindNotFound) {
				return false, httperr.ErrValidation("doctor_not_found", "Doctor not found")
			}
			if err != nil {
				return false, err
			}
		}
		domain.AssignDoctor(ap, doctor)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return ap, nil
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
