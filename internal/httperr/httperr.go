package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Message string `json:"error"`
	Code    string `json:"error_code,omitempty"`
	Type    string `json:"type,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

// Internal reports an unexpected failure with its message and Go type.
func Internal(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, HTTPError{
		Message: err.Error(),
		Type:    typeName(err),
	})
}

// Respond maps err onto the HTTP status of its kind.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		switch be.Kind {
		case KindValidation:
			BadRequest(c, be.Code, be.Error())
		case KindNotFound:
			NotFound(c, be.Code, be.Error())
		case KindConflict:
			Conflict(c, be.Code, be.Error())
		default:
			Internal(c, err)
		}
		return
	}
	Internal(c, err)
}

func typeName(err error) string {
	var se *StoreError
	if errors.As(err, &se) {
		return "StoreError"
	}
	return fmt.Sprintf("%T", err)
}
