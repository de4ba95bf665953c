// Package http provides HTTP handlers for department operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tlias/tlias/internal/dept/http/dto"
	"github.com/tlias/tlias/internal/dept/usecase"
	"github.com/tlias/tlias/internal/httputil"
)

// DeptHandler handles department HTTP requests
type DeptHandler struct {
	deptUseCase usecase.DeptUseCase
	logger      *slog.Logger
}

// NewDeptHandler creates a new DeptHandler
func NewDeptHandler(deptUseCase usecase.DeptUseCase, logger *slog.Logger) *DeptHandler {
	return &DeptHandler{
		deptUseCase: deptUseCase,
		logger:      logger,
	}
}

// ListHandler returns all departments.
// GET /depts - requires dept.list.
func (h *DeptHandler) ListHandler(c *gin.Context) {
	depts, err := h.deptUseCase.ListAll(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeptResponses(depts))
}

// GetHandler retrieves one department.
// GET /depts/:id - requires dept.view.
func (h *DeptHandler) GetHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid id parameter"), h.logger)
		return
	}

	dept, err := h.deptUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeptResponse(dept))
}

// CreateHandler saves a new department.
// POST /depts - requires dept.create.
func (h *DeptHandler) CreateHandler(c *gin.Context) {
	var req dto.DeptUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	dept := dto.ToDept(req)
	if err := h.deptUseCase.Create(c.Request.Context(), dept); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDeptResponse(dept))
}

// UpdateHandler modifies an existing department.
// PUT /depts/:id - requires dept.edit.
func (h *DeptHandler) UpdateHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid id parameter"), h.logger)
		return
	}

	var req dto.DeptUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	dept := dto.ToDept(req)
	dept.ID = id
	if err := h.deptUseCase.Update(c.Request.Context(), dept); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeptResponse(dept))
}

// DeleteHandler removes a department by ID.
// DELETE /depts?id=N - requires dept.delete.
func (h *DeptHandler) DeleteHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid id parameter"), h.logger)
		return
	}

	if err := h.deptUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
