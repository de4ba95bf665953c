package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tlias/tlias/internal/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestHandleErrorGin_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"not found", apperrors.Wrap(apperrors.ErrNotFound, "employee not found"), http.StatusNotFound, "not_found"},
		{"conflict", apperrors.Wrap(apperrors.ErrConflict, "username already exists"), http.StatusConflict, "conflict"},
		{"invalid input", apperrors.Wrap(apperrors.ErrInvalidInput, "ids must not be empty"), http.StatusUnprocessableEntity, "invalid_input"},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"forbidden", apperrors.Wrap(apperrors.ErrForbidden, "missing permission: student.create"), http.StatusForbidden, "forbidden"},
		{"internal", assert.AnError, http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)
			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

func TestHandleErrorGin_UnauthorizedHasNoMessage(t *testing.T) {
	c, w := newTestContext(t)
	HandleErrorGin(c, apperrors.Wrap(apperrors.ErrUnauthorized, "token expired at 10:00"), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "expired")
}

func TestHandleErrorGin_ForbiddenNamesPermission(t *testing.T) {
	c, w := newTestContext(t)
	HandleErrorGin(c, apperrors.Wrap(apperrors.ErrForbidden, "missing permission: student.create"), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "student.create")
}

func TestHandleErrorGin_InternalHidesDetails(t *testing.T) {
	c, w := newTestContext(t)
	HandleErrorGin(c, apperrors.New("connection to 10.0.0.5 refused"), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestHandleErrorGin_NilError(t *testing.T) {
	c, w := newTestContext(t)
	HandleErrorGin(c, nil, nil)

	assert.Empty(t, w.Body.String())
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext(t)
	HandleBadRequestGin(c, assert.AnError, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext(t)
	HandleValidationErrorGin(c, assert.AnError, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}
