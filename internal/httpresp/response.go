package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatusResponse struct {
	Status string `json:"status"`
	ID     *uint  `json:"id,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List always renders a JSON array, never null.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, data)
}

func Success(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: "success"})
}

func Created(c *gin.Context, id uint) {
	c.JSON(http.StatusOK, StatusResponse{Status: "success", ID: &id})
}
