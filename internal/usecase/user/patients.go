package user

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ListPatients struct {
	repo domain.Repository
}

func NewListPatients(repo domain.Repository) *ListPatients {
	return &ListPatients{repo: repo}
}

func (uc *ListPatients) Execute(ctx context.Context) ([]models.User, error) {
	return uc.repo.ListByRole(ctx, models.RolePatient)
}

// DeletePatient only removes patient rows; their appointments stay.
type DeletePatient struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeletePatient(
	repo domain.Repository,
	audit audit.Recorder,
) *DeletePatient {
	return &DeletePatient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeletePatient) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteByRole(ctx, id, models.RolePatient); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   "patient_deleted",
		Entity:   "patient",
		EntityID: &id,
	})
	return nil
}
