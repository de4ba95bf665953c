// Package http provides HTTP handlers for student operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/tlias/tlias/internal/errors"
	"github.com/tlias/tlias/internal/httputil"
	"github.com/tlias/tlias/internal/student/domain"
	"github.com/tlias/tlias/internal/student/http/dto"
	"github.com/tlias/tlias/internal/student/usecase"
)

// StudentHandler handles student HTTP requests
type StudentHandler struct {
	studentUseCase usecase.StudentUseCase
	logger         *slog.Logger
}

// NewStudentHandler creates a new StudentHandler
func NewStudentHandler(studentUseCase usecase.StudentUseCase, logger *slog.Logger) *StudentHandler {
	return &StudentHandler{
		studentUseCase: studentUseCase,
		logger:         logger,
	}
}

// PageHandler lists students with optional name, degree, and class filters.
// GET /students - requires student.list.
func (h *StudentHandler) PageHandler(c *gin.Context) {
	page, pageSize, err := httputil.ParsePage(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	offset, limit := httputil.PageToOffset(page, pageSize)

	filter, err := parseStudentFilter(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	students, total, err := h.studentUseCase.Page(c.Request.Context(), filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.PageResult[dto.StudentResponse]{
		Total: total,
		Rows:  dto.ToStudentResponses(students),
	})
}

// GetHandler retrieves one student.
// GET /students/:id - requires student.view.
func (h *StudentHandler) GetHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid id parameter"), h.logger)
		return
	}

	student, err := h.studentUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// CreateHandler saves a new student.
// POST /students - requires student.create.
func (h *StudentHandler) CreateHandler(c *gin.Context) {
	var req dto.StudentUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	student := dto.ToStudent(req)
	if err := h.studentUseCase.Create(c.Request.Context(), student); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStudentResponse(student))
}

// UpdateHandler modifies an existing student.
// PUT /students/:id - requires student.edit.
func (h *StudentHandler) UpdateHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid id parameter"), h.logger)
		return
	}

	var req dto.StudentUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	student := dto.ToStudent(req)
	student.ID = id
	if err := h.studentUseCase.Update(c.Request.Context(), student); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// DeleteHandler removes students in batch.
// DELETE /students/:ids (comma-separated) - requires student.delete.
func (h *StudentHandler) DeleteHandler(c *gin.Context) {
	ids, err := parseIDList(c.Param("ids"))
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := h.studentUseCase.Delete(c.Request.Context(), ids); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// ViolationHandler records a disciplinary violation for a student.
// PUT /students/violation/:id/:score - requires student.edit.
func (h *StudentHandler) ViolationHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid id parameter"), h.logger)
		return
	}
	score, err := strconv.Atoi(c.Param("score"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid score parameter"), h.logger)
		return
	}

	if err := h.studentUseCase.AddViolation(c.Request.Context(), id, score); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusOK)
}

// parseStudentFilter reads the optional page-query filters
func parseStudentFilter(c *gin.Context) (domain.StudentFilter, error) {
	filter := domain.StudentFilter{Name: c.Query("name")}

	if degreeStr := c.Query("degree"); degreeStr != "" {
		degree, err := strconv.Atoi(degreeStr)
		if err != nil {
			return domain.StudentFilter{}, fmt.Errorf("invalid degree parameter")
		}
		filter.Degree = &degree
	}
	if clazzIDStr := c.Query("clazzId"); clazzIDStr != "" {
		clazzID, err := strconv.ParseInt(clazzIDStr, 10, 64)
		if err != nil {
			return domain.StudentFilter{}, fmt.Errorf("invalid clazzId parameter")
		}
		filter.ClazzID = &clazzID
	}

	return filter, nil
}

// parseIDList parses a comma-separated list of numeric IDs
func parseIDList(value string) ([]int64, error) {
	if value == "" {
		return nil, apperrors.New("ids parameter is required")
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
