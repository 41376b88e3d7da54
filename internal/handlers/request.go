package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// numeric accepts 12, "12", "" and null. Browser forms post ids and ages
// as strings.
type numeric struct {
	Valid bool
	Value int
}

func (n *numeric) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		*n = numeric{}
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*n = numeric{Valid: true, Value: v}
	return nil
}

func (n numeric) Ptr() *int {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// ID returns nil for absent or non-positive values.
func (n numeric) ID() *uint {
	if !n.Valid || n.Value <= 0 {
		return nil
	}
	v := uint(n.Value)
	return &v
}

func (n numeric) UintOrZero() uint {
	if id := n.ID(); id != nil {
		return *id
	}
	return 0
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, ok := parseID(c.Param(name))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "invalid id")
	}
	return id, ok
}

func queryID(c *gin.Context) (uint, bool) {
	id, ok := parseID(c.Query("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id query parameter is required")
	}
	return id, ok
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return false
	}
	return true
}
