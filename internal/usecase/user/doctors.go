package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/queue"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const doctorInitialStatus = "Available"

// ======================================================
// List
// ======================================================

type ListDoctors struct {
	repo domain.Repository
}

func NewListDoctors(repo domain.Repository) *ListDoctors {
	return &ListDoctors{repo: repo}
}

func (uc *ListDoctors) Execute(ctx context.Context) ([]models.User, error) {
	return uc.repo.ListByRole(ctx, models.RoleDoctor)
}

// ======================================================
// Create (admin)
// ======================================================

type CreateDoctorInput struct {
	Name        string
	Mobile      string
	Department  string
	Room        string
	Description string
}

type CreateDoctor struct {
	repo  domain.Repository
	cache queue.Cache
	audit audit.Recorder
}

func NewCreateDoctor(
	repo domain.Repository,
	cache queue.Cache,
	audit audit.Recorder,
) *CreateDoctor {
	return &CreateDoctor{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateDoctor) Execute(
	ctx context.Context,
	in CreateDoctorInput,
) (*models.User, error) {

	name := strings.TrimSpace(in.Name)
	mobile := strings.TrimSpace(in.Mobile)
	dept := strings.TrimSpace(in.Department)

	if name == "" || mobile == "" || dept == "" {
		return nil, httperr.ErrValidation(
			"missing_fields",
			"name, mobile and department are required",
		)
	}

	status := doctorInitialStatus
	doctor := &models.User{
		Name:        name,
		Mobile:      mobile,
		Department:  &dept,
		Status:      &status,
		RoomNumber:  optional(in.Room),
		Description: optional(in.Description),
	}

	if err := uc.repo.CreateDoctor(ctx, doctor); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx)
	uc.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   "doctor_created",
		Entity:   "doctor",
		EntityID: &doctor.ID,
	})

	return doctor, nil
}

// ======================================================
// Delete (admin)
// ======================================================

type DeleteDoctor struct {
	repo  domain.Repository
	cache queue.Cache
	audit audit.Recorder
}

func NewDeleteDoctor(
	repo domain.Repository,
	cache queue.Cache,
	audit audit.Recorder,
) *DeleteDoctor {
	return &DeleteDoctor{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *DeleteDoctor) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteByRole(ctx, id, models.RoleDoctor); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx)
	uc.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   "doctor_deleted",
		Entity:   "doctor",
		EntityID: &id,
	})
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
