package report_test

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/db/dbtest"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/blob"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	uc "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/report"
)

type fixture struct {
	db    *gorm.DB
	blobs *blob.LocalStore
	save  *uc.SaveReport
	get   *uc.GetReport
}

func setup(t *testing.T) *fixture {
	t.Helper()

	gdb := dbtest.New(t)
	store, err := blob.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("blob store: %v", err)
	}
	repo := repository.NewReportGormRepository(gdb)

	return &fixture{
		db:    gdb,
		blobs: store,
		save:  uc.NewSaveReport(repo, store, audit.NopRecorder{}, zerolog.Nop()),
		get:   uc.NewGetReport(repo),
	}
}

func (f *fixture) appointment(t *testing.T, status string) *models.Appointment {
	t.Helper()
	ap := &models.Appointment{Dept: "General Physician", Date: "2025-01-01", Status: status, UserMobile: "5550001"}
	if err := f.db.Create(ap).Error; err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return ap
}

func strp(s string) *string { return &s }

func TestSaveReport_FirstSaveCompletesAppointment(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	ap := f.appointment(t, "Scheduled")

	res, err := f.save.Execute(ctx, uc.SaveReportInput{
		AppointmentID: ap.ID,
		Diagnosis:     "Flu",
		Medicines:     "Paracetamol",
		Notes:         "Rest",
		Symptoms:      strp("Fever"),
		FollowUpDate:  strp("2025-01-10"),
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !res.Created {
		t.Error("expected first save to create the report")
	}

	var stored models.Appointment
	f.db.First(&stored, ap.ID)
	if stored.Status != "Completed" || !stored.HasReport {
		t.Errorf("expected Completed with report, got %s/%v", stored.Status, stored.HasReport)
	}

	rep, err := f.get.Execute(ctx, ap.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rep.Symptoms == nil || *rep.Symptoms != "Fever" {
		t.Errorf("unexpected symptoms %v", rep.Symptoms)
	}
	if rep.FollowUpDate == nil || *rep.FollowUpDate != "2025-01-10" {
		t.Errorf("unexpected follow-up %v", rep.FollowUpDate)
	}
}

func TestSaveReport_UpdateKeepsSingleRowAndFile(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	ap := f.appointment(t, "Confirmed")

	first, err := f.save.Execute(ctx, uc.SaveReportInput{
		AppointmentID: ap.ID,
		Diagnosis:     "Flu",
		Medicines:     "Paracetamol",
		Notes:         "Rest",
		File:          strings.NewReader("x-ray"),
		FileName:      "chest.png",
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	if first.Report.FilePath == nil {
		t.Fatal("expected stored file path")
	}
	path := *first.Report.FilePath

	second, err := f.save.Execute(ctx, uc.SaveReportInput{
		AppointmentID: ap.ID,
		Diagnosis:     "Viral fever",
		Medicines:     "Paracetamol",
		Notes:         "Fluids",
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if second.Created {
		t.Error("second save must update, not create")
	}

	var count int64
	f.db.Model(&models.Report{}).Where("appointment_id = ?", ap.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 report row, got %d", count)
	}

	rep, err := f.get.Execute(ctx, ap.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rep.Diagnosis != "Viral fever" {
		t.Errorf("expected updated diagnosis, got %q", rep.Diagnosis)
	}
	if rep.FilePath == nil || *rep.FilePath != path {
		t.Errorf("file path should be kept, got %v", rep.FilePath)
	}
	if rep.Symptoms != nil {
		t.Errorf("absent symptoms should be cleared, got %v", *rep.Symptoms)
	}

	rc, err := f.blobs.Open(ctx, path)
	if err != nil {
		t.Fatalf("open attachment: %v", err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != "x-ray" {
		t.Errorf("unexpected attachment %q", body)
	}
}

func TestSaveReport_MissingAppointment(t *testing.T) {
	f := setup(t)

	_, err := f.save.Execute(context.Background(), uc.SaveReportInput{
		AppointmentID: 77,
		Diagnosis:     "Flu",
		File:          strings.NewReader("never stored"),
		FileName:      "a.pdf",
	})
	if !httperr.IsBusiness(err, "appointment_not_found") || !httperr.IsKind(err, httperr.KindValidation) {
		t.Fatalf("expected appointment_not_found validation error, got %v", err)
	}

	var count int64
	f.db.Model(&models.Report{}).Count(&count)
	if count != 0 {
		t.Errorf("no report should be stored, got %d", count)
	}
}

func TestGetReport_NotFound(t *testing.T) {
	f := setup(t)
	ap := f.appointment(t, "Scheduled")

	_, err := f.get.Execute(context.Background(), ap.ID)
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteAppointment_KeepsReport(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	ap := f.appointment(t, "Confirmed")

	if _, err := f.save.Execute(ctx, uc.SaveReportInput{
		AppointmentID: ap.ID,
		Diagnosis:     "Migraine",
		Medicines:     "Ibuprofen",
		Notes:         "Dark room",
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	remove := ucAppointment.NewDeleteAppointment(
		repository.NewAppointmentGormRepository(f.db),
		audit.NopRecorder{},
	)
	if err := remove.Execute(ctx, ap.ID); err != nil {
		t.Fatalf("delete appointment: %v", err)
	}

	rep, err := f.get.Execute(ctx, ap.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if rep.Diagnosis != "Migraine" {
		t.Errorf("expected the saved report, got %+v", rep)
	}
}

func TestSaveReport_ConcurrentSavesKeepOneRow(t *testing.T) {
	gdb, err := db.NewDB(&config.Config{SQLitePath: filepath.Join(t.TempDir(), "clinic.db")})
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })
	if res := db.Migrate(gdb); !res.OK() {
		t.Fatalf("migrate: %s", res.Error)
	}

	ap := &models.Appointment{Dept: "Cardiology", Date: "2025-02-01", Status: "Scheduled", UserMobile: "5550002"}
	if err := gdb.Create(ap).Error; err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	store, err := blob.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("blob store: %v", err)
	}
	save := uc.NewSaveReport(repository.NewReportGormRepository(gdb), store, audit.NopRecorder{}, zerolog.Nop())

	const writers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		errs    []error
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := save.Execute(context.Background(), uc.SaveReportInput{
				AppointmentID: ap.ID,
				Diagnosis:     fmt.Sprintf("draft %d", i),
				Medicines:     "Aspirin",
				Notes:         "Follow up",
			})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			if res.Created {
				created++
			}
		}(i)
	}
	wg.Wait()

	if len(errs) > 0 {
		t.Fatalf("concurrent saves failed: %v", errs)
	}
	if created != 1 {
		t.Errorf("expected exactly one save to create the report, got %d", created)
	}

	var count int64
	gdb.Model(&models.Report{}).Where("appointment_id = ?", ap.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 report row, got %d", count)
	}
}
