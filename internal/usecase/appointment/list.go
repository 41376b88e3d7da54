package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// ======================================================
// Patient view
// ======================================================

type ListPatientAppointments struct {
	repo domain.Repository
}

func NewListPatientAppointments(repo domain.Repository) *ListPatientAppointments {
	return &ListPatientAppointments{repo: repo}
}

func (uc *ListPatientAppointments) Execute(
	ctx context.Context,
	mobile string,
) ([]dto.PatientAppointmentDTO, error) {

	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return nil, httperr.ErrValidation("mobile_required", "mobile is required")
	}
	return uc.repo.ListForPatient(ctx, mobile)
}

// ======================================================
// Staff views
// ======================================================

type ListAllAppointments struct {
	repo domain.Repository
}

func NewListAllAppointments(repo domain.Repository) *ListAllAppointments {
	return &ListAllAppointments{repo: repo}
}

func (uc *ListAllAppointments) Execute(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {
	return uc.repo.ListAll(ctx)
}

type ListAdminAppointments struct {
	repo domain.Repository
}

func NewListAdminAppointments(repo domain.Repository) *ListAdminAppointments {
	return &ListAdminAppointments{repo: repo}
}

func (uc *ListAdminAppointments) Execute(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {
	return uc.repo.ListForAdmin(ctx, 0)
}

type PatientHistory struct {
	repo domain.Repository
}

func NewPatientHistory(repo domain.Repository) *PatientHistory {
	return &PatientHistory{repo: repo}
}

func (uc *PatientHistory) Execute(
	ctx context.Context,
	mobile string,
) ([]dto.PatientHistoryDTO, error) {

	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return nil, httperr.ErrValidation("mobile_required", "mobile is required")
	}
	return uc.repo.PatientHistory(ctx, mobile)
}
