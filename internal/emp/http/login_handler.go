package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tlias/tlias/internal/emp/http/dto"
	"github.com/tlias/tlias/internal/emp/usecase"
	"github.com/tlias/tlias/internal/httputil"
)

// LoginHandler handles the credential exchange endpoint
type LoginHandler struct {
	empUseCase usecase.EmpUseCase
	logger     *slog.Logger
}

// NewLoginHandler creates a new LoginHandler
func NewLoginHandler(empUseCase usecase.EmpUseCase, logger *slog.Logger) *LoginHandler {
	return &LoginHandler{
		empUseCase: empUseCase,
		logger:     logger,
	}
}

// LoginHandler exchanges username/password for a signed token.
// POST /login - on the authentication allow-list.
func (h *LoginHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	info, err := h.empUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("employee logged in",
		slog.Int64("emp_id", info.ID),
		slog.String("username", info.Username),
	)
	c.JSON(http.StatusOK, dto.ToLoginResponse(info))
}
