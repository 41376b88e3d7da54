package admin

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

const recentActivityLimit = 5

type GetStats struct {
	users        user.Repository
	appointments appointment.Repository
	tz           string
}

func NewGetStats(
	users user.Repository,
	appointments appointment.Repository,
	tz string,
) *GetStats {
	return &GetStats{
		users:        users,
		appointments: appointments,
		tz:           tz,
	}
}

func (uc *GetStats) Execute(ctx context.Context) (*dto.AdminStatsDTO, error) {
	var (
		out dto.AdminStatsDTO
		err error
	)

	if out.Doctors, err = uc.users.CountByRole(ctx, models.RoleDoctor); err != nil {
		return nil, err
	}
	if out.Patients, err = uc.users.CountByRole(ctx, models.RolePatient); err != nil {
		return nil, err
	}
	if out.Appointments, err = uc.appointments.CountAppointments(ctx, ""); err != nil {
		return nil, err
	}
	if out.Today, err = uc.appointments.CountAppointments(ctx, timezone.Today(uc.tz)); err != nil {
		return nil, err
	}

	recent, err := uc.appointments.ListForAdmin(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []dto.AppointmentListDTO{}
	}
	out.RecentActivity = recent

	return &out, nil
}
