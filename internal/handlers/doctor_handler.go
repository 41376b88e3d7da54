package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucQueue "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/queue"
	ucUser "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/user"
)

// DoctorHandler serves the doctor directory, the clinic-wide queue and the
// doctors' own status updates.
type DoctorHandler struct {
	list         *ucUser.ListDoctors
	queueStatus  *ucQueue.GetQueueStatus
	updateStatus *ucQueue.UpdateDoctorStatus
}

func NewDoctorHandler(
	list *ucUser.ListDoctors,
	queueStatus *ucQueue.GetQueueStatus,
	updateStatus *ucQueue.UpdateDoctorStatus,
) *DoctorHandler {
	return &DoctorHandler{
		list:         list,
		queueStatus:  queueStatus,
		updateStatus: updateStatus,
	}
}

type UpdateDoctorStatusRequest struct {
	ID           numeric `json:"id"`
	Status       *string `json:"status"`
	QueueCurrent numeric `json:"queue_current"`
	QueueTotal   numeric `json:"queue_total"`
}

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewDoctorDTOs(doctors))
}

func (h *DoctorHandler) Queue(c *gin.Context) {
	s, err := h.queueStatus.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *DoctorHandler) UpdateStatus(c *gin.Context) {
	var req UpdateDoctorStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.updateStatus.Execute(c.Request.Context(), ucQueue.UpdateDoctorStatusInput{
		DoctorID:     req.ID.UintOrZero(),
		Status:       req.Status,
		QueueCurrent: req.QueueCurrent.Ptr(),
		QueueTotal:   req.QueueTotal.Ptr(),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status Updated"})
}
