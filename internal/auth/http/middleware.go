// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	authDomain "github.com/tlias/tlias/internal/auth/domain"
	authService "github.com/tlias/tlias/internal/auth/service"
	apperrors "github.com/tlias/tlias/internal/errors"
	"github.com/tlias/tlias/internal/httputil"
)

// TokenHeader is the request header slot carrying the login token.
const TokenHeader = "token"

// RoleLookup resolves an employee's role code by id. Implemented by the
// employee repository; the authorization middleware treats any lookup
// failure as a denial (fail closed).
type RoleLookup interface {
	RoleByID(ctx context.Context, empID int64) (int, error)
}

// AuthenticationMiddleware verifies the login token on every request.
//
// The middleware:
// 1. Skips requests whose path matches an allow-listed prefix (login, probes)
// 2. Reads the token from the "token" header
// 3. Rejects absent or invalid tokens with 401 before any routing happens
// 4. On success binds the employee id to the request context via WithActor
//
// Absent and invalid tokens produce identical responses; only the internal
// log distinguishes them. Failure is terminal for the request: no retry,
// no fallback identity.
func AuthenticationMiddleware(
	codec authService.TokenCodec,
	allowedPrefixes []string,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range allowedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		token := c.GetHeader(TokenHeader)
		if token == "" {
			logger.Debug("authentication failed: missing token header",
				slog.String("path", path))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		claims, err := codec.Verify(token)
		if err != nil {
			logger.Debug("authentication failed: invalid token",
				slog.String("path", path),
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		ctx := WithActor(c.Request.Context(), claims.ID)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.Int64("emp_id", claims.ID),
			slog.String("username", claims.Username))

		c.Next()
	}
}

// RequirePermission gates one operation behind a single permission declared
// at route registration time.
//
// MUST be used after AuthenticationMiddleware. The middleware:
// 1. Reads the employee id from the request context; absent → 403
// 2. Resolves the caller's role via the RoleLookup collaborator, bounded
//    by lookupTimeout; lookup failure fails closed
// 3. Computes the role's permission set and checks the required permission
// 4. Denials are logged at warning level with actor and attempted
//    permission, and the missing permission is named in the response
//
// The check runs before argument parsing and any persistence access, so a
// denial short-circuits with zero side effects on the data store.
func RequirePermission(
	perm authDomain.Permission,
	roles RoleLookup,
	lookupTimeout time.Duration,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		empID, ok := ActorID(c.Request.Context())
		if !ok {
			logger.Warn("authorization failed: no authenticated employee in context",
				slog.String("permission", string(perm)))
			httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrForbidden, "not authenticated"), logger)
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), lookupTimeout)
		defer cancel()

		role, err := roles.RoleByID(ctx, empID)
		if err != nil {
			// Never default to a permissive role when the lookup fails.
			logger.Warn("authorization failed: role lookup error",
				slog.Int64("emp_id", empID),
				slog.String("permission", string(perm)),
				slog.Any("error", err))
			httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrForbidden, "role lookup failed"), logger)
			c.Abort()
			return
		}

		permissions := authDomain.ResolvePermissions(role)
		if !permissions.Has(perm) {
			logger.Warn("authorization denied",
				slog.Int64("emp_id", empID),
				slog.Int("role", role),
				slog.String("permission", string(perm)))
			httputil.HandleErrorGin(
				c,
				apperrors.Wrap(apperrors.ErrForbidden, "missing permission "+string(perm)),
				logger,
			)
			c.Abort()
			return
		}

		logger.Info("authorization granted",
			slog.Int64("emp_id", empID),
			slog.String("permission", string(perm)))

		c.Next()
	}
}
