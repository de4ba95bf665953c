package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditDomain "github.com/tlias/tlias/internal/audit/domain"
	authHTTP "github.com/tlias/tlias/internal/auth/http"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingUseCase captures recorded operate logs in memory.
type recordingUseCase struct {
	mu      sync.Mutex
	records []*auditDomain.OperateLog
	err     error
}

func (r *recordingUseCase) Record(ctx context.Context, operateLog *auditDomain.OperateLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, operateLog)
	return nil
}

func (r *recordingUseCase) List(ctx context.Context, offset, limit int) ([]*auditDomain.OperateLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records, int64(len(r.records)), nil
}

func (r *recordingUseCase) recorded() []*auditDomain.OperateLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records
}

func newAuditRouter(uc *recordingUseCase, actorID *int64, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	if actorID != nil {
		id := *actorID
		router.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(authHTTP.WithActor(c.Request.Context(), id))
			c.Next()
		})
	}
	router.POST("/students", Middleware(uc, "student", "create", time.Second, testLogger()), handler)
	return router
}

func TestMiddleware_RecordsOnSuccess(t *testing.T) {
	uc := &recordingUseCase{}
	actor := int64(42)
	router := newAuditRouter(uc, &actor, func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": 7})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(`{"name":"test"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	records := uc.recorded()
	require.Len(t, records, 1, "exactly one record per successful call")

	record := records[0]
	require.NotNil(t, record.OperateEmpID)
	assert.Equal(t, int64(42), *record.OperateEmpID)
	assert.Equal(t, "student", record.ClassName)
	assert.Equal(t, "create", record.MethodName)
	assert.Contains(t, record.MethodParams, "POST /students")
	assert.Contains(t, record.MethodParams, `{"name":"test"}`)
	assert.Contains(t, record.ReturnValue, `"id":7`)
	assert.False(t, record.OperateTime.IsZero())
	assert.GreaterOrEqual(t, record.CostTime, int64(0))
}

func TestMiddleware_NoRecordOnFailure(t *testing.T) {
	uc := &recordingUseCase{}
	actor := int64(42)
	router := newAuditRouter(uc, &actor, func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid_input"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/students", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, uc.recorded(), "failed operations are not audited")
}

func TestMiddleware_NilActorRecordedAsNull(t *testing.T) {
	uc := &recordingUseCase{}
	router := newAuditRouter(uc, nil, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/students", nil))

	records := uc.recorded()
	require.Len(t, records, 1)
	assert.Nil(t, records[0].OperateEmpID, "identity-less calls carry a NULL actor")
}

func TestMiddleware_RecordFailureDoesNotAffectResponse(t *testing.T) {
	uc := &recordingUseCase{err: assert.AnError}
	actor := int64(1)
	router := newAuditRouter(uc, &actor, func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": 1})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/students", nil))

	// The business response is committed regardless of the audit outage
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
}

func TestMiddleware_TruncatesLargePayloads(t *testing.T) {
	uc := &recordingUseCase{}
	actor := int64(1)
	router := newAuditRouter(uc, &actor, func(c *gin.Context) {
		c.String(http.StatusOK, strings.Repeat("b", 5000))
	})

	w := httptest.NewRecorder()
	body := strings.NewReader(strings.Repeat("a", 5000))
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/students", body))

	// The full response reaches the client untouched
	assert.Len(t, w.Body.String(), 5000)

	records := uc.recorded()
	require.Len(t, records, 1)
	assert.LessOrEqual(t, len(records[0].MethodParams), maxCapturedBytes)
	assert.LessOrEqual(t, len(records[0].ReturnValue), maxCapturedBytes)
}

func TestMiddleware_BodyStillReadableByHandler(t *testing.T) {
	uc := &recordingUseCase{}
	actor := int64(1)

	var seenBody string
	router := newAuditRouter(uc, &actor, func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		seenBody = string(data)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/students", strings.NewReader(`{"name":"x"}`)))

	assert.Equal(t, `{"name":"x"}`, seenBody)
}
