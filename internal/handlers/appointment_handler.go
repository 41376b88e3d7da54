package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book           *ucAppointment.BookAppointment
	confirm        *ucAppointment.ConfirmAppointment
	cancel         *ucAppointment.CancelAppointment
	delete         *ucAppointment.DeleteAppointment
	listForPatient *ucAppointment.ListPatientAppointments
	listAll        *ucAppointment.ListAllAppointments
	history        *ucAppointment.PatientHistory
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	confirm *ucAppointment.ConfirmAppointment,
	cancel *ucAppointment.CancelAppointment,
	remove *ucAppointment.DeleteAppointment,
	listForPatient *ucAppointment.ListPatientAppointments,
	listAll *ucAppointment.ListAllAppointments,
	history *ucAppointment.PatientHistory,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:           book,
		confirm:        confirm,
		cancel:         cancel,
		delete:         remove,
		listForPatient: listForPatient,
		listAll:        listAll,
		history:        history,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	Dept        string  `json:"dept"`
	Date        string  `json:"date"`
	Mobile      string  `json:"mobile"`
	PatientName *string `json:"patient_name"`
	PatientAge  numeric `json:"patient_age"`
	DoctorID    numeric `json:"doctor_id"`
}

type ConfirmAppointmentRequest struct {
	DoctorID numeric `json:"doctor_id"`
}

// ======================================================
// PATIENT
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		Dept:        req.Dept,
		Date:        req.Date,
		Mobile:      req.Mobile,
		PatientName: req.PatientName,
		PatientAge:  req.PatientAge.Ptr(),
		DoctorID:    req.DoctorID.ID(),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap.ID)
}

// ListForPatient answers with an empty list when no mobile is given.
func (h *AppointmentHandler) ListForPatient(c *gin.Context) {
	mobile := strings.TrimSpace(c.Query("mobile"))
	if mobile == "" {
		httpresp.List(c, []dto.PatientAppointmentDTO{})
		return
	}

	rows, err := h.listForPatient.Execute(c.Request.Context(), mobile)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, rows)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	// body is optional
	var req ConfirmAppointmentRequest
	if c.Request.ContentLength > 0 {
		if !bindJSON(c, &req) {
			return
		}
	}

	if _, err := h.confirm.Execute(c.Request.Context(), id, req.DoctorID.ID()); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Success(c)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := h.cancel.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Success(c)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Success(c)
}

// ======================================================
// DOCTOR
// ======================================================

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	rows, err := h.listAll.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, rows)
}

func (h *AppointmentHandler) PatientHistory(c *gin.Context) {
	rows, err := h.history.Execute(c.Request.Context(), c.Param("mobile"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, rows)
}
