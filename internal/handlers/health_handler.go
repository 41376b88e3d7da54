package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/db"
)

type HealthHandler struct {
	migration db.MigrationResult
	dbType    string
	version   string
}

func NewHealthHandler(migration db.MigrationResult, dbType, version string) *HealthHandler {
	return &HealthHandler{
		migration: migration,
		dbType:    dbType,
		version:   version,
	}
}

type HealthResponse struct {
	Status    string             `json:"status"`
	Version   string             `json:"version"`
	DBType    string             `json:"db_type"`
	Migration db.MigrationResult `json:"migration"`
}

// Get reports "degraded" with 503 when the startup migration failed.
func (h *HealthHandler) Get(c *gin.Context) {
	status, code := "ok", http.StatusOK
	if !h.migration.OK() {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Version:   h.version,
		DBType:    h.dbType,
		Migration: h.migration,
	})
}
