package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucMessage "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/message"
)

type ContactHandler struct {
	create *ucMessage.CreateMessage
	list   *ucMessage.ListMessages
}

func NewContactHandler(
	create *ucMessage.CreateMessage,
	list *ucMessage.ListMessages,
) *ContactHandler {
	return &ContactHandler{create: create, list: list}
}

type ContactRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.create.Execute(c.Request.Context(), ucMessage.ContactInput{
		Name:    req.Name,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, m.ID)
}

func (h *ContactHandler) List(c *gin.Context) {
	msgs, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, msgs)
}
