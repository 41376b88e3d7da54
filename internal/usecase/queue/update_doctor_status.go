package queue

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/queue"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type UpdateDoctorStatusInput struct {
	DoctorID     uint
	Status       *string
	QueueCurrent *int
	QueueTotal   *int
}

type UpdateDoctorStatus struct {
	repo  domain.Repository
	cache domain.Cache
	audit audit.Recorder
}

func NewUpdateDoctorStatus(
	repo domain.Repository,
	cache domain.Cache,
	audit audit.Recorder,
) *UpdateDoctorStatus {
	return &UpdateDoctorStatus{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *UpdateDoctorStatus) Execute(
	ctx context.Context,
	in UpdateDoctorStatusInput,
) error {

	if in.DoctorID == 0 {
		return httperr.ErrValidation("doctor_id_required", "id is required")
	}
	if (in.QueueCurrent != nil && *in.QueueCurrent < 0) ||
		(in.QueueTotal != nil && *in.QueueTotal < 0) {
		return httperr.ErrValidation("invalid_queue_value", "queue values must not be negative")
	}

	upd := domain.DoctorStatusUpdate{
		QueueCurrent: in.QueueCurrent,
		QueueTotal:   in.QueueTotal,
	}
	if in.Status != nil {
		status := strings.TrimSpace(*in.Status)
		if status == "" {
			return httperr.ErrValidation("invalid_status", "status must not be empty")
		}
		upd.Status = &status
	}

	if err := uc.repo.UpdateDoctorStatus(ctx, in.DoctorID, upd); err != nil {
		return err
	}

	if !upd.IsEmpty() {
		uc.cache.Invalidate(ctx)
		uc.audit.Dispatch(audit.Event{
			Action:   "doctor_status_updated",
			Entity:   "doctor",
			EntityID: &in.DoctorID,
		})
	}

	return nil
}
