package appointment

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const maxUpdateAttempts = 3

// applyChange reads the appointment, lets change mutate it and writes it
// back guarded on the status it was read with. When another writer moved
// the row in between, the change is re-applied to the fresh row.
func applyChange(
	ctx context.Context,
	repo domain.Repository,
	id uint,
	change func(ap *models.Appointment) (bool, error),
) (*models.Appointment, bool, error) {

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		ap, err := repo.GetAppointment(ctx, id)
		if err != nil {
			return nil, false, err
		}
		from := domain.Status(ap.Status)

		changed, err := change(ap)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return ap, false, nil
		}

		err = repo.UpdateAppointment(ctx, ap, from)
		if errors.Is(err, domain.ErrStale) {
			continue
		}
		if err != nil {
			return nil, false, err
		}
		return ap, true, nil
	}

	return nil, false, httperr.ErrConflict(
		"appointment_busy",
		"Appointment is being updated, try again",
	)
}
