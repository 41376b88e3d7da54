package user

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository interface {
	FindByMobile(ctx context.Context, mobile string) (*models.User, error)

	// GetOrCreatePatient never creates a second row for the same mobile,
	// even when two first logins race.
	GetOrCreatePatient(ctx context.Context, u *models.User) (*models.User, error)

	CreateDoctor(ctx context.Context, u *models.User) error

	ListByRole(ctx context.Context, role string) ([]models.User, error)

	CountByRole(ctx context.Context, role string) (int64, error)

	DeleteByRole(ctx context.Context, id uint, role string) error
}
