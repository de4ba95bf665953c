// Package http provides HTTP handlers for employee operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/tlias/tlias/internal/auth/http"
	"github.com/tlias/tlias/internal/emp/domain"
	"github.com/tlias/tlias/internal/emp/http/dto"
	"github.com/tlias/tlias/internal/emp/usecase"
	apperrors "github.com/tlias/tlias/internal/errors"
	"github.com/tlias/tlias/internal/httputil"
)

// EmpHandler handles employee HTTP requests
type EmpHandler struct {
	empUseCase usecase.EmpUseCase
	logger     *slog.Logger
}

// NewEmpHandler creates a new EmpHandler
func NewEmpHandler(empUseCase usecase.EmpUseCase, logger *slog.Logger) *EmpHandler {
	return &EmpHandler{
		empUseCase: empUseCase,
		logger:     logger,
	}
}

// PageHandler lists employees with optional name, gender, and entry-date
// filters. GET /emps - requires emp.list.
func (h *EmpHandler) PageHandler(c *gin.Context) {
	page, pageSize, err := httputil.ParsePage(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	offset, limit := httputil.PageToOffset(page, pageSize)

	filter, err := parseEmpFilter(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	emps, total, err := h.empUseCase.Page(c.Request.Context(), filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.PageResult[dto.EmpResponse]{
		Total: total,
		Rows:  dto.ToEmpResponses(emps),
	})
}

// CreateHandler saves an employee with work-experience rows.
// POST /emps - requires emp.create.
func (h *EmpHandler) CreateHandler(c *gin.Context) {
	var req dto.EmpUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	emp := dto.ToEmp(req)
	if err := h.empUseCase.Create(c.Request.Context(), emp); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmpResponse(emp))
}

// UpdateHandler modifies an employee and replaces their work-experience rows.
// PUT /emps/:id - requires emp.edit.
func (h *EmpHandler) UpdateHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid id parameter"), h.logger)
		return
	}

	var req dto.EmpUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	emp := dto.ToEmp(req)
	emp.ID = id
	if err := h.empUseCase.Update(c.Request.Context(), emp); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmpResponse(emp))
}

// DeleteHandler removes employees in batch.
// DELETE /emps?ids=1,2,3 - requires emp.delete.
func (h *EmpHandler) DeleteHandler(c *gin.Context) {
	ids, err := parseIDList(c.Query("ids"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.empUseCase.Delete(c.Request.Context(), ids); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetHandler retrieves one employee with work-experience rows.
// GET /emps/:id - requires emp.view.
func (h *EmpHandler) GetHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid id parameter"), h.logger)
		return
	}

	emp, err := h.empUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmpResponse(emp))
}

// ListHandler returns all employees as name options.
// GET /emps/list - requires emp.list.
func (h *EmpHandler) ListHandler(c *gin.Context) {
	emps, err := h.empUseCase.ListAll(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmpResponses(emps))
}

// PermissionsHandler returns the caller's resolved permission set.
// GET /emps/permissions - authenticated, no permission gate.
func (h *EmpHandler) PermissionsHandler(c *gin.Context) {
	actorID, ok := authHTTP.ActorID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	perms, err := h.empUseCase.PermissionsFor(c.Request.Context(), actorID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToPermissionsResponse(perms))
}

// parseEmpFilter reads the optional page-query filters
func parseEmpFilter(c *gin.Context) (domain.EmpFilter, error) {
	filter := domain.EmpFilter{Name: c.Query("name")}

	if genderStr := c.Query("gender"); genderStr != "" {
		gender, err := strconv.Atoi(genderStr)
		if err != nil {
			return domain.EmpFilter{}, fmt.Errorf("invalid gender parameter")
		}
		filter.Gender = &gender
	}
	if beginStr := c.Query("begin"); beginStr != "" {
		begin, err := time.Parse(dto.DateLayout, beginStr)
		if err != nil {
			return domain.EmpFilter{}, fmt.Errorf("invalid begin parameter: must be YYYY-MM-DD")
		}
		filter.Begin = &begin
	}
	if endStr := c.Query("end"); endStr != "" {
		end, err := time.Parse(dto.DateLayout, endStr)
		if err != nil {
			return domain.EmpFilter{}, fmt.Errorf("invalid end parameter: must be YYYY-MM-DD")
		}
		filter.End = &end
	}

	return filter, nil
}

// parseIDList parses a comma-separated list of numeric IDs
func parseIDList(value string) ([]int64, error) {
	if value == "" {
		return nil, fmt.Errorf("ids parameter is required")
	}

	parts := strings.Split(value, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ids parameter: %q is not a number", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
