// Package http provides HTTP handlers for the report endpoints.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tlias/tlias/internal/httputil"
	"github.com/tlias/tlias/internal/report/usecase"
)

// ReportHandler handles the read-only report HTTP requests
type ReportHandler struct {
	reportUseCase usecase.ReportUseCase
	logger        *slog.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportUseCase usecase.ReportUseCase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		logger:        logger,
	}
}

// EmpJobDataHandler counts employees per job.
// GET /report/empJobData - requires report.view.
func (h *ReportHandler) EmpJobDataHandler(c *gin.Context) {
	option, err := h.reportUseCase.EmpJobData(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, option)
}

// EmpGenderDataHandler counts employees per gender.
// GET /report/empGenderData - requires report.view.
func (h *ReportHandler) EmpGenderDataHandler(c *gin.Context) {
	items, err := h.reportUseCase.EmpGenderData(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, items)
}

// StudentDegreeDataHandler counts students per degree level.
// GET /report/studentDegreeData - requires report.view.
func (h *ReportHandler) StudentDegreeDataHandler(c *gin.Context) {
	items, err := h.reportUseCase.StudentDegreeData(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, items)
}

// StudentCountDataHandler counts students per class.
// GET /report/studentCountData - requires report.view.
func (h *ReportHandler) StudentCountDataHandler(c *gin.Context) {
	option, err := h.reportUseCase.StudentCountData(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, option)
}
