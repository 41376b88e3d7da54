package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCancelAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, changed, err := applyChange(ctx, uc.repo, appointmentID, domain.Cancel)
	if err != nil {
		return nil, err
	}
	if !changed {
		return ap, nil
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
