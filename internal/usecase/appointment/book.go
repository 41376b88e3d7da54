package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	Dept   string
	Date   string
	Mobile string

	PatientName *string
	PatientAge  *int

	DoctorID *uint
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewBookAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	dept := strings.TrimSpace(in.Dept)
	date := strings.TrimSpace(in.Date)
	mobile := strings.TrimSpace(in.Mobile)

	if dept == "" || date == "" || mobile == "" {
		return nil, httperr.ErrValidation(
			"missing_fields",
			"dept, date and mobile are required",
		)
	}

	if in.PatientAge != nil && *in.PatientAge < 0 {
		return nil, httperr.ErrValidation("invalid_age", "age must not be negative")
	}

	ap := &models.Appointment{
		Dept:        dept,
		Date:        date,
		Status:      string(domain.InitialStatus()),
		UserMobile:  mobile,
		PatientName: trimmedOrNil(in.PatientName),
		PatientAge:  in.PatientAge,
	}

	// --------------------------------------------------
	// Optional doctor reference
	// --------------------------------------------------
	if in.DoctorID != nil {
		doctor, err := uc.repo.GetDoctor(ctx, *in.DoctorID)
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, httperr.ErrValidation("doctor_not_found", "Doctor not found")
		}
		if err != nil {
			return nil, err
		}
		domain.AssignDoctor(ap, doctor)
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    mobile,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"dept": dept, "date": date},
	})

	return ap, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
