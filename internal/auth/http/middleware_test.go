package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/tlias/tlias/internal/auth/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubTokenCodec maps fixed token strings to claims.
type stubTokenCodec struct {
	tokens map[string]authDomain.Claims
}

func (s *stubTokenCodec) Issue(claims authDomain.Claims) (string, error) {
	return "issued", nil
}

func (s *stubTokenCodec) Verify(token string) (authDomain.Claims, error) {
	claims, ok := s.tokens[token]
	if !ok {
		return authDomain.Claims{}, authDomain.ErrInvalidToken
	}
	return claims, nil
}

// stubRoleLookup returns a fixed role or error per employee id.
type stubRoleLookup struct {
	roles map[int64]int
	err   error
	calls int
}

func (s *stubRoleLookup) RoleByID(ctx context.Context, empID int64) (int, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.roles[empID], nil
}

func newAuthRouter(codec *stubTokenCodec, handlerCalled *bool) *gin.Engine {
	router := gin.New()
	router.Use(AuthenticationMiddleware(codec, []string{"/login", "/health"}, testLogger()))
	router.GET("/emps", func(c *gin.Context) {
		*handlerCalled = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.POST("/login", func(c *gin.Context) {
		*handlerCalled = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAuthenticationMiddleware_MissingToken(t *testing.T) {
	handlerCalled := false
	router := newAuthRouter(&stubTokenCodec{}, &handlerCalled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/emps", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerCalled, "handler must not run without a token")
}

func TestAuthenticationMiddleware_InvalidToken(t *testing.T) {
	handlerCalled := false
	router := newAuthRouter(&stubTokenCodec{}, &handlerCalled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/emps", nil)
	req.Header.Set(TokenHeader, "garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerCalled)
}

func TestAuthenticationMiddleware_MissingAndInvalidIndistinguishable(t *testing.T) {
	handlerCalled := false
	router := newAuthRouter(&stubTokenCodec{}, &handlerCalled)

	missing := httptest.NewRecorder()
	router.ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/emps", nil))

	invalid := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/emps", nil)
	req.Header.Set(TokenHeader, "garbage")
	router.ServeHTTP(invalid, req)

	assert.Equal(t, missing.Code, invalid.Code)
	assert.JSONEq(t, missing.Body.String(), invalid.Body.String())
}

func TestAuthenticationMiddleware_ValidToken(t *testing.T) {
	handlerCalled := false
	codec := &stubTokenCodec{tokens: map[string]authDomain.Claims{
		"good-token": {ID: 42, Username: "songjiang"},
	}}
	router := gin.New()
	router.Use(AuthenticationMiddleware(codec, nil, testLogger()))

	var gotID int64
	var gotOK bool
	router.GET("/emps", func(c *gin.Context) {
		gotID, gotOK = ActorID(c.Request.Context())
		handlerCalled = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/emps", nil)
	req.Header.Set(TokenHeader, "good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerCalled)
	assert.True(t, gotOK)
	assert.Equal(t, int64(42), gotID)
}

func TestAuthenticationMiddleware_AllowList(t *testing.T) {
	handlerCalled := false
	router := newAuthRouter(&stubTokenCodec{}, &handlerCalled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, handlerCalled, "allow-listed path must skip authentication")
}

func newRequireRouter(
	perm authDomain.Permission,
	roles *stubRoleLookup,
	withActor bool,
	actorID int64,
	handlerCalled *bool,
) *gin.Engine {
	router := gin.New()
	if withActor {
		router.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(WithActor(c.Request.Context(), actorID))
			c.Next()
		})
	}
	router.DELETE("/emps", RequirePermission(perm, roles, time.Second, testLogger()), func(c *gin.Context) {
		*handlerCalled = true
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestRequirePermission_NoActor(t *testing.T) {
	handlerCalled := false
	roles := &stubRoleLookup{}
	router := newRequireRouter(authDomain.PermEmpDelete, roles, false, 0, &handlerCalled)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/emps", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerCalled)
	assert.Zero(t, roles.calls, "role lookup must not run without an actor")
}

func TestRequirePermission_Denied(t *testing.T) {
	handlerCalled := false
	roles := &stubRoleLookup{roles: map[int64]int{10: authDomain.RoleLecturer}}
	router := newRequireRouter(authDomain.PermStudentCreate, roles, true, 10, &handlerCalled)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/emps", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerCalled, "denial must short-circuit before the handler")

	// The missing permission is named in the response
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "student.create")
}

func TestRequirePermission_Granted(t *testing.T) {
	handlerCalled := false
	roles := &stubRoleLookup{roles: map[int64]int{10: authDomain.RoleStudentUnionHead}}
	router := newRequireRouter(authDomain.PermEmpDelete, roles, true, 10, &handlerCalled)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/emps", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, handlerCalled)
	assert.Equal(t, 1, roles.calls)
}

func TestRequirePermission_LookupFailureFailsClosed(t *testing.T) {
	handlerCalled := false
	roles := &stubRoleLookup{err: assert.AnError}
	router := newRequireRouter(authDomain.PermEmpDelete, roles, true, 10, &handlerCalled)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/emps", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerCalled)
}

func TestRequirePermission_UnknownRoleGetsBaseline(t *testing.T) {
	// Unknown role codes degrade to the baseline read set: reads pass,
	// writes are denied.
	roles := &stubRoleLookup{roles: map[int64]int{10: 99}}

	readCalled := false
	readRouter := newRequireRouter(authDomain.PermStudentList, roles, true, 10, &readCalled)
	w := httptest.NewRecorder()
	readRouter.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/emps", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, readCalled)

	writeCalled := false
	writeRouter := newRequireRouter(authDomain.PermStudentDelete, roles, true, 10, &writeCalled)
	w = httptest.NewRecorder()
	writeRouter.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/emps", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, writeCalled)
}
