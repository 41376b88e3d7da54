package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	ucUser "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/user"
)

type AuthHandler struct {
	login *ucUser.Login
}

func NewAuthHandler(login *ucUser.Login) *AuthHandler {
	return &AuthHandler{login: login}
}

type LoginRequest struct {
	Mobile string  `json:"mobile"`
	Name   *string `json:"name"`
	Age    numeric `json:"age"`
}

type LoginResponse struct {
	Status string       `json:"status"`
	User   *models.User `json:"user"`
}

// Login identifies the caller by mobile number, registering new patients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.login.Execute(c.Request.Context(), ucUser.LoginInput{
		Mobile: req.Mobile,
		Name:   req.Name,
		Age:    req.Age.Ptr(),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Status: "success", User: u})
}
