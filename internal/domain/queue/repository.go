package queue

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// DoctorStatusUpdate carries only the fields the caller wants to change.
type DoctorStatusUpdate struct {
	Status       *string
	QueueCurrent *int
	QueueTotal   *int
}

func (u DoctorStatusUpdate) IsEmpty() bool {
	return u.Status == nil && u.QueueCurrent == nil && u.QueueTotal == nil
}

type Repository interface {
	ListDoctors(ctx context.Context) ([]models.User, error)

	UpdateDoctorStatus(
		ctx context.Context,
		doctorID uint,
		upd DoctorStatusUpdate,
	) error

	// GetSetting returns "" when the key is not set.
	GetSetting(ctx context.Context, key string) (string, error)
}

type Cache interface {
	Get(ctx context.Context) (*Status, bool)
	Set(ctx context.Context, s Status)
	Invalidate(ctx context.Context)
}

type NopCache struct{}

func (NopCache) Get(context.Context) (*Status, bool) { return nil, false }
func (NopCache) Set(context.Context, Status)         {}
func (NopCache) Invalidate(context.Context)          {}
