package report

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/blob"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SaveReportInput struct {
	AppointmentID uint

	Diagnosis string
	Medicines string
	Notes     string

	Symptoms     *string
	FollowUpDate *string

	// File is optional; FileName is the client-side name.
	File     io.Reader
	FileName string
}

type SaveReportResult struct {
	Report  *models.Report
	Created bool
}

// ======================================================
// USE CASE
// ======================================================

type SaveReport struct {
	repo  domain.Repository
	blobs blob.Store
	audit audit.Recorder
	log   zerolog.Logger
}

func NewSaveReport(
	repo domain.Repository,
	blobs blob.Store,
	audit audit.Recorder,
	log zerolog.Logger,
) *SaveReport {
	return &SaveReport{
		repo:  repo,
		blobs: blobs,
		audit: audit,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SaveReport) Execute(
	ctx context.Context,
	in SaveReportInput,
) (*SaveReportResult, error) {

	if in.AppointmentID == 0 {
		return nil, httperr.ErrValidation("appointment_id_required", "appointment_id is required")
	}

	exists, err := uc.repo.AppointmentExists(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrValidation("appointment_not_found", "Appointment not found")
	}

	rep := &models.Report{
		AppointmentID: in.AppointmentID,
		Diagnosis:     in.Diagnosis,
		Medicines:     in.Medicines,
		Notes:         in.Notes,
		Symptoms:      emptyToNil(in.Symptoms),
		FollowUpDate:  emptyToNil(in.FollowUpDate),
	}

	// --------------------------------------------------
	// Attachment
	// --------------------------------------------------
	if in.File != nil {
		name, err := uc.blobs.Save(ctx, in.FileName, in.File)
		if err != nil {
			return nil, httperr.Store("store attachment", err)
		}
		rep.FilePath = &name
	}

	created, err := uc.repo.UpsertReport(ctx, rep)
	if err != nil {
		if rep.FilePath != nil {
			if derr := uc.blobs.Delete(ctx, *rep.FilePath); derr != nil {
				uc.log.Warn().Err(derr).Str("file", *rep.FilePath).Msg("orphan attachment left behind")
			}
		}
		return nil, err
	}

	action := "report_updated"
	if created {
		action = "report_created"
	}
	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "report",
		EntityID: &rep.ID,
		Metadata: map[string]uint{"appointment_id": rep.AppointmentID},
	})

	return &SaveReportResult{Report: rep, Created: created}, nil
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
