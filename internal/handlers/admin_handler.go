package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucAdmin "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/admin"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucUser "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/user"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	listDoctors     *ucUser.ListDoctors
	createDoctor    *ucUser.CreateDoctor
	deleteDoctor    *ucUser.DeleteDoctor
	listPatients    *ucUser.ListPatients
	deletePatient   *ucUser.DeletePatient
	stats           *ucAdmin.GetStats
	allAppointments *ucAppointment.ListAdminAppointments
}

type AdminUseCases struct {
	ListDoctors     *ucUser.ListDoctors
	CreateDoctor    *ucUser.CreateDoctor
	DeleteDoctor    *ucUser.DeleteDoctor
	ListPatients    *ucUser.ListPatients
	DeletePatient   *ucUser.DeletePatient
	Stats           *ucAdmin.GetStats
	AllAppointments *ucAppointment.ListAdminAppointments
}

func NewAdminHandler(uc AdminUseCases) *AdminHandler {
	return &AdminHandler{
		listDoctors:     uc.ListDoctors,
		createDoctor:    uc.CreateDoctor,
		deleteDoctor:    uc.DeleteDoctor,
		listPatients:    uc.ListPatients,
		deletePatient:   uc.DeletePatient,
		stats:           uc.Stats,
		allAppointments: uc.AllAppointments,
	}
}

type CreateDoctorRequest struct {
	Name        string `json:"name"`
	Mobile      string `json:"mobile"`
	Department  string `json:"department"`
	Room        string `json:"room"`
	Description string `json:"description"`
}

// ======================================================
// DOCTORS
// ======================================================

func (h *AdminHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.listDoctors.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewDoctorDTOs(doctors))
}

func (h *AdminHandler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	doctor, err := h.createDoctor.Execute(c.Request.Context(), ucUser.CreateDoctorInput{
		Name:        req.Name,
		Mobile:      req.Mobile,
		Department:  req.Department,
		Room:        req.Room,
		Description: req.Description,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, doctor.ID)
}

func (h *AdminHandler) DeleteDoctor(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}

	if err := h.deleteDoctor.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Success(c)
}

// ======================================================
// PATIENTS
// ======================================================

func (h *AdminHandler) ListPatients(c *gin.Context) {
	patients, err := h.listPatients.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, patients)
}

func (h *AdminHandler) DeletePatient(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}

	if err := h.deletePatient.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Success(c)
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, stats)
}

func (h *AdminHandler) AllAppointments(c *gin.Context) {
	rows, err := h.allAppointments.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, rows)
}
