package report

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type GetReport struct {
	repo domain.Repository
}

func NewGetReport(repo domain.Repository) *GetReport {
	return &GetReport{repo: repo}
}

func (uc *GetReport) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Report, error) {
	return uc.repo.GetByAppointment(ctx, appointmentID)
}
