// Package http provides HTTP handlers for class operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tlias/tlias/internal/clazz/domain"
	"github.com/tlias/tlias/internal/clazz/http/dto"
	"github.com/tlias/tlias/internal/clazz/usecase"
	"github.com/tlias/tlias/internal/httputil"
)

// ClazzHandler handles class HTTP requests
type ClazzHandler struct {
	clazzUseCase usecase.ClazzUseCase
	logger       *slog.Logger
}

// NewClazzHandler creates a new ClazzHandler
func NewClazzHandler(clazzUseCase usecase.ClazzUseCase, logger *slog.Logger) *ClazzHandler {
	return &ClazzHandler{
		clazzUseCase: clazzUseCase,
		logger:       logger,
	}
}

// PageHandler lists classes with optional name and schedule filters.
// GET /clazzs - requires clazz.list.
func (h *ClazzHandler) PageHandler(c *gin.Context) {
	page, pageSize, err := httputil.ParsePage(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	offset, limit := httputil.PageToOffset(page, pageSize)

	filter, err := parseClazzFilter(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	clazzs, total, err := h.clazzUseCase.Page(c.Request.Context(), filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.PageResult[dto.ClazzResponse]{
		Total: total,
		Rows:  dto.ToClazzResponses(clazzs),
	})
}

// CreateHandler saves a new class.
// POST /clazzs - requires clazz.create.
func (h *ClazzHandler) CreateHandler(c *gin.Context) {
	var req dto.ClazzUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	clazz := dto.ToClazz(req)
	if err := h.clazzUseCase.Create(c.Request.Context(), clazz); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClazzResponse(clazz))
}

// GetHandler retrieves one class.
// GET /clazzs/:id - requires clazz.view.
func (h *ClazzHandler) GetHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid id parameter"), h.logger)
		return
	}

	clazz, err := h.clazzUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToClazzResponse(clazz))
}

// UpdateHandler modifies an existing class.
// PUT /clazzs/:id - requires clazz.edit.
func (h *ClazzHandler) UpdateHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid id parameter"), h.logger)
		return
	}

	var req dto.ClazzUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	clazz := dto.ToClazz(req)
	clazz.ID = id
	if err := h.clazzUseCase.Update(c.Request.Context(), clazz); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToClazzResponse(clazz))
}

// DeleteHandler removes a class. Refused while students remain in it.
// DELETE /clazzs/:id - requires clazz.delete.
func (h *ClazzHandler) DeleteHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid id parameter"), h.logger)
		return
	}

	if err := h.clazzUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListHandler returns all classes as options.
// GET /clazzs/list - requires clazz.list.
func (h *ClazzHandler) ListHandler(c *gin.Context) {
	clazzs, err := h.clazzUseCase.ListAll(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToClazzResponses(clazzs))
}

// parseClazzFilter reads the optional page-query filters
func parseClazzFilter(c *gin.Context) (domain.ClazzFilter, error) {
	filter := domain.ClazzFilter{Name: c.Query("name")}

	if beginStr := c.Query("begin"); beginStr != "" {
		begin, err := time.Parse(dto.DateLayout, beginStr)
		if err != nil {
			return domain.ClazzFilter{}, fmt.Errorf("invalid begin parameter: must be YYYY-MM-DD")
		}
		filter.Begin = &begin
	}
	if endStr := c.Query("end"); endStr != "" {
		end, err := time.Parse(dto.DateLayout, endStr)
		if err != nil {
			return domain.ClazzFilter{}, fmt.Errorf("invalid end parameter: must be YYYY-MM-DD")
		}
		filter.End = &end
	}

	return filter, nil
}
