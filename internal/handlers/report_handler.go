package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucReport "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/report"
)

type ReportHandler struct {
	save      *ucReport.SaveReport
	get       *ucReport.GetReport
	maxUpload int64
}

func NewReportHandler(
	save *ucReport.SaveReport,
	get *ucReport.GetReport,
	maxUpload int64,
) *ReportHandler {
	return &ReportHandler{
		save:      save,
		get:       get,
		maxUpload: maxUpload,
	}
}

type SaveReportRequest struct {
	AppointmentID numeric `json:"appointment_id"`
	Diagnosis     string  `json:"diagnosis"`
	Medicines     string  `json:"medicines"`
	Notes         string  `json:"notes"`
	Symptoms      *string `json:"symptoms"`
	FollowUpDate  *string `json:"follow_up_date"`
}

// Save accepts either a JSON body or a multipart form with an optional
// "file" part.
func (h *ReportHandler) Save(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	var (
		in  ucReport.SaveReportInput
		err error
	)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var file multipart.File
		in, file, err = h.fromMultipart(c)
		if file != nil {
			defer file.Close()
		}
	} else {
		var req SaveReportRequest
		if err = c.ShouldBindJSON(&req); err == nil {
			in = ucReport.SaveReportInput{
				AppointmentID: req.AppointmentID.UintOrZero(),
				Diagnosis:     req.Diagnosis,
				Medicines:     req.Medicines,
				Notes:         req.Notes,
				Symptoms:      req.Symptoms,
				FollowUpDate:  req.FollowUpDate,
			}
		}
	}

	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.Write(c, http.StatusRequestEntityTooLarge, "file_too_large", "upload exceeds the size limit")
			return
		}
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if _, err := h.save.Execute(c.Request.Context(), in); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Success(c)
}

func (h *ReportHandler) fromMultipart(c *gin.Context) (ucReport.SaveReportInput, multipart.File, error) {
	if err := c.Request.ParseMultipartForm(h.maxUpload); err != nil {
		return ucReport.SaveReportInput{}, nil, err
	}

	in := ucReport.SaveReportInput{
		Diagnosis: c.PostForm("diagnosis"),
		Medicines: c.PostForm("medicines"),
		Notes:     c.PostForm("notes"),
	}
	if id, ok := parseID(c.PostForm("appointment_id")); ok {
		in.AppointmentID = id
	}
	if v, ok := c.GetPostForm("symptoms"); ok {
		in.Symptoms = &v
	}
	if v, ok := c.GetPostForm("follow_up_date"); ok {
		in.FollowUpDate = &v
	}

	fh, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return in, nil, nil
	}
	if err != nil {
		return in, nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return in, nil, err
	}
	in.File = f
	in.FileName = fh.Filename
	return in, f, nil
}

func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "aptId")
	if !ok {
		return
	}

	rep, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, rep)
}
