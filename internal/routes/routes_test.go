package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/db"
	"github.com/BruksfildServices01/clinic-scheduler/internal/db/dbtest"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/queue"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/blob"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newServer(t *testing.T) *testServer {
	t.Helper()

	gdb := dbtest.New(t)
	store, err := blob.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("blob store: %v", err)
	}

	cfg := &config.Config{
		MaxUploadMB:           1,
		WaitMinutesPerPatient: 15,
		ClinicTimezone:        "UTC",
		CORSOrigins:           []string{"*"},
	}

	r := gin.New()
	RegisterRoutes(r, gdb, cfg, Deps{
		Blobs:      store,
		QueueCache: queue.NopCache{},
		Audit:      audit.NopRecorder{},
		Logger:     zerolog.Nop(),
		Migration:  db.MigrationResult{Status: db.MigrationSuccess, Dialect: "sqlite"},
		Version:    "test",
	})

	return &testServer{t: t, db: gdb, router: r}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			s.t.Fatalf("encode body: %v", err)
		}
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

func TestLoginFlow(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/login", map[string]any{"mobile": "9000000001"})
	expectStatus(t, w, http.StatusBadRequest)
	if body := decode[map[string]string](t, w); body["error"] != "Name and Age required for new registration" {
		t.Errorf("unexpected error body %v", body)
	}

	// the web client posts age as a string
	w = s.do(http.MethodPost, "/api/login", map[string]any{"mobile": "9000000001", "name": "Jane", "age": "30"})
	expectStatus(t, w, http.StatusOK)

	type loginResp struct {
		Status string      `json:"status"`
		User   models.User `json:"user"`
	}
	first := decode[loginResp](t, w)
	if first.Status != "success" || first.User.Role != "patient" || first.User.Age == nil || *first.User.Age != 30 {
		t.Errorf("unexpected login response %+v", first)
	}

	w = s.do(http.MethodPost, "/api/login", map[string]any{"mobile": "9000000001"})
	expectStatus(t, w, http.StatusOK)
	if again := decode[loginResp](t, w); again.User.ID != first.User.ID {
		t.Errorf("expected same user id %d, got %d", first.User.ID, again.User.ID)
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/book", map[string]any{
		"dept": "Cardiology", "date": "2025-01-01", "mobile": "5550001",
	})
	expectStatus(t, w, http.StatusOK)
	booked := decode[map[string]any](t, w)
	if booked["status"] != "success" || booked["id"] != float64(1) {
		t.Fatalf("unexpected book response %v", booked)
	}

	w = s.do(http.MethodGet, "/api/appointments?mobile=5550001", nil)
	expectStatus(t, w, http.StatusOK)
	list := decode[[]map[string]any](t, w)
	if len(list) != 1 || list[0]["status"] != "Scheduled" {
		t.Fatalf("unexpected list %v", list)
	}

	expectStatus(t, s.do(http.MethodPost, "/api/appointments/1/cancel", nil), http.StatusOK)

	w = s.do(http.MethodPost, "/api/appointments/1/confirm", nil)
	expectStatus(t, w, http.StatusConflict)
	if body := decode[map[string]string](t, w); body["error_code"] != "invalid_state" {
		t.Errorf("unexpected conflict body %v", body)
	}

	expectStatus(t, s.do(http.MethodPost, "/api/appointments/99/confirm", nil), http.StatusNotFound)
	expectStatus(t, s.do(http.MethodPost, "/api/appointments/abc/cancel", nil), http.StatusBadRequest)

	expectStatus(t, s.do(http.MethodDelete, "/api/appointments/1", nil), http.StatusOK)
	expectStatus(t, s.do(http.MethodDelete, "/api/appointments/1", nil), http.StatusNotFound)
}

func TestAppointments_NoMobileIsEmptyList(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/api/appointments", nil)
	expectStatus(t, w, http.StatusOK)
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected [], got %s", w.Body.String())
	}
}

func TestBook_MissingFields(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/book", map[string]any{"dept": "ENT"})
	expectStatus(t, w, http.StatusBadRequest)
}

func TestReportJSON(t *testing.T) {
	s := newServer(t)
	expectStatus(t, s.do(http.MethodPost, "/api/book", map[string]any{
		"dept": "ENT", "date": "2025-01-01", "mobile": "5550002",
	}), http.StatusOK)

	expectStatus(t, s.do(http.MethodGet, "/api/report/1", nil), http.StatusNotFound)

	w := s.do(http.MethodPost, "/api/doctor/report", map[string]any{
		"appointment_id": "1",
		"diagnosis":      "Flu",
		"medicines":      "Paracetamol",
		"notes":          "Rest",
		"symptoms":       "Fever",
		"follow_up_date": "2025-01-10",
	})
	expectStatus(t, w, http.StatusOK)

	w = s.do(http.MethodGet, "/api/report/1", nil)
	expectStatus(t, w, http.StatusOK)
	rep := decode[models.Report](t, w)
	if rep.Diagnosis != "Flu" || rep.Symptoms == nil || *rep.Symptoms != "Fever" {
		t.Errorf("unexpected report %+v", rep)
	}

	w = s.do(http.MethodGet, "/api/doctor/patient_history/5550002", nil)
	expectStatus(t, w, http.StatusOK)
	history := decode[[]map[string]any](t, w)
	if len(history) != 1 || history[0]["status"] != "Completed" || history[0]["diagnosis"] != "Flu" {
		t.Errorf("unexpected history %v", history)
	}

	w = s.do(http.MethodPost, "/api/doctor/report", map[string]any{"appointment_id": 42, "diagnosis": "x"})
	expectStatus(t, w, http.StatusBadRequest)
}

func multipartReport(t *testing.T, fields map[string]string, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		fw.Write(content)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestReportMultipartAndDownload(t *testing.T) {
	s := newServer(t)
	expectStatus(t, s.do(http.MethodPost, "/api/book", map[string]any{
		"dept": "Dental", "date": "2025-01-01", "mobile": "5550003",
	}), http.StatusOK)

	body, ct := multipartReport(t, map[string]string{
		"appointment_id": "1",
		"diagnosis":      "Cavity",
		"medicines":      "None",
		"notes":          "Filling",
	}, "x ray.txt", []byte("tooth 14"))

	req := httptest.NewRequest(http.MethodPost, "/api/doctor/report", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	expectStatus(t, w, http.StatusOK)

	var rep models.Report
	if err := s.db.Where("appointment_id = ?", 1).First(&rep).Error; err != nil {
		t.Fatalf("read report: %v", err)
	}
	if rep.FilePath == nil || !strings.HasSuffix(*rep.FilePath, "_x_ray.txt") {
		t.Fatalf("unexpected file path %v", rep.FilePath)
	}

	w = s.do(http.MethodGet, "/uploads/"+*rep.FilePath, nil)
	expectStatus(t, w, http.StatusOK)
	if w.Body.String() != "tooth 14" {
		t.Errorf("unexpected download %q", w.Body.String())
	}

	expectStatus(t, s.do(http.MethodGet, "/uploads/missing.pdf", nil), http.StatusNotFound)
}

func TestReportMultipart_TooLarge(t *testing.T) {
	s := newServer(t)
	expectStatus(t, s.do(http.MethodPost, "/api/book", map[string]any{
		"dept": "Dental", "date": "2025-01-01", "mobile": "5550004",
	}), http.StatusOK)

	body, ct := multipartReport(t, map[string]string{"appointment_id": "1"}, "big.bin", bytes.Repeat([]byte("a"), 2<<20))

	req := httptest.NewRequest(http.MethodPost, "/api/doctor/report", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	expectStatus(t, w, http.StatusRequestEntityTooLarge)
}

func TestQueueAndDoctorStatus(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/admin/doctors", map[string]any{
		"name": "Dr. Nethe", "mobile": "admin6", "department": "Pediatrics", "room": "OPD-4",
	})
	expectStatus(t, w, http.StatusOK)
	id := decode[map[string]any](t, w)["id"]

	w = s.do(http.MethodPost, "/api/doctor/status", map[string]any{
		"id": id, "status": "Busy", "queue_current": 1, "queue_total": 4,
	})
	expectStatus(t, w, http.StatusOK)
	if body := decode[map[string]string](t, w); body["message"] != "Status Updated" {
		t.Errorf("unexpected body %v", body)
	}

	w = s.do(http.MethodGet, "/api/queue", nil)
	expectStatus(t, w, http.StatusOK)
	q := decode[map[string]int](t, w)
	if q["current"] != 1 || q["total"] != 4 || q["waitTime"] != 45 {
		t.Errorf("unexpected queue %v", q)
	}

	w = s.do(http.MethodGet, "/api/doctors", nil)
	expectStatus(t, w, http.StatusOK)
	doctors := decode[[]map[string]any](t, w)
	if len(doctors) != 1 || doctors[0]["status"] != "Busy" || doctors[0]["room_number"] != "OPD-4" {
		t.Errorf("unexpected doctors %v", doctors)
	}
	if _, leaked := doctors[0]["created_at"]; leaked {
		t.Error("directory should only expose public fields")
	}

	expectStatus(t, s.do(http.MethodPost, "/api/doctor/status", map[string]any{"id": 999, "status": "Off"}), http.StatusNotFound)
	expectStatus(t, s.do(http.MethodPost, "/api/doctor/status", map[string]any{"status": "Off"}), http.StatusBadRequest)
}

func TestAdmin(t *testing.T) {
	s := newServer(t)

	doc := map[string]any{"name": "Dr. Sharma", "mobile": "admin4", "department": "Orthopedic"}
	expectStatus(t, s.do(http.MethodPost, "/api/admin/doctors", doc), http.StatusOK)

	w := s.do(http.MethodPost, "/api/admin/doctors", doc)
	expectStatus(t, w, http.StatusConflict)
	if body := decode[map[string]string](t, w); body["error_code"] != "mobile_already_registered" {
		t.Errorf("unexpected body %v", body)
	}

	expectStatus(t, s.do(http.MethodPost, "/api/login", map[string]any{"mobile": "777", "name": "Ravi", "age": 41}), http.StatusOK)
	expectStatus(t, s.do(http.MethodPost, "/api/book", map[string]any{"dept": "Orthopedic", "date": "2025-05-05", "mobile": "777"}), http.StatusOK)

	w = s.do(http.MethodGet, "/api/admin/stats", nil)
	expectStatus(t, w, http.StatusOK)
	stats := decode[map[string]any](t, w)
	if stats["doctors"] != float64(1) || stats["patients"] != float64(1) || stats["appointments"] != float64(1) {
		t.Errorf("unexpected stats %v", stats)
	}
	if _, ok := stats["revenue"]; ok {
		t.Error("revenue must not be reported")
	}

	w = s.do(http.MethodGet, "/api/admin/all_appointments", nil)
	expectStatus(t, w, http.StatusOK)
	rows := decode[[]map[string]any](t, w)
	if len(rows) != 1 || rows[0]["patient_name"] != "Ravi" {
		t.Errorf("unexpected admin rows %v", rows)
	}

	expectStatus(t, s.do(http.MethodDelete, "/api/admin/patients", nil), http.StatusBadRequest)
	expectStatus(t, s.do(http.MethodDelete, "/api/admin/doctors?id=1", nil), http.StatusOK)
	expectStatus(t, s.do(http.MethodDelete, "/api/admin/doctors?id=1", nil), http.StatusNotFound)
}

func TestContact(t *testing.T) {
	s := newServer(t)

	expectStatus(t, s.do(http.MethodPost, "/api/contact", map[string]any{"subject": "Hi"}), http.StatusBadRequest)
	expectStatus(t, s.do(http.MethodPost, "/api/contact", map[string]any{"subject": "Hi", "message": "Hello"}), http.StatusOK)

	w := s.do(http.MethodGet, "/api/doctor/messages", nil)
	expectStatus(t, w, http.StatusOK)
	msgs := decode[[]map[string]any](t, w)
	if len(msgs) != 1 || msgs[0]["name"] != "Anonymous" {
		t.Errorf("unexpected messages %v", msgs)
	}
}

func TestHealth(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/api/health", nil)
	expectStatus(t, w, http.StatusOK)

	body := decode[map[string]any](t, w)
	if body["status"] != "ok" || body["db_type"] != "sqlite" || body["version"] != "test" {
		t.Errorf("unexpected health %v", body)
	}
}
