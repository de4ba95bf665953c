package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tlias/tlias/internal/audit/http/dto"
	auditUseCase "github.com/tlias/tlias/internal/audit/usecase"
	"github.com/tlias/tlias/internal/httputil"
)

// OperateLogHandler handles HTTP requests for operate-log listing.
type OperateLogHandler struct {
	operateLogUseCase auditUseCase.OperateLogUseCase
	logger            *slog.Logger
}

// NewOperateLogHandler creates a new operate-log handler.
func NewOperateLogHandler(operateLogUseCase auditUseCase.OperateLogUseCase, logger *slog.Logger) *OperateLogHandler {
	return &OperateLogHandler{
		operateLogUseCase: operateLogUseCase,
		logger:            logger,
	}
}

// PageHandler lists operate-log records, newest first.
// GET /log/page - requires log.view.
func (h *OperateLogHandler) PageHandler(c *gin.Context) {
	page, pageSize, err := httputil.ParsePage(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	offset, limit := httputil.PageToOffset(page, pageSize)

	operateLogs, total, err := h.operateLogUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.PageResult[dto.OperateLogResponse]{
		Total: total,
		Rows:  dto.MapOperateLogsToResponses(operateLogs),
	})
}
