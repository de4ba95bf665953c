// Package http provides the operate-log middleware and handlers.
package http

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	auditDomain "github.com/tlias/tlias/internal/audit/domain"
	auditUseCase "github.com/tlias/tlias/internal/audit/usecase"
	authHTTP "github.com/tlias/tlias/internal/auth/http"
)

// maxCapturedBytes caps serialized params and results so one oversized
// payload cannot bloat the operate_log table.
const maxCapturedBytes = 2000

// bodyCaptureWriter duplicates the response body into a buffer so the
// middleware can serialize the operation result after the handler returns.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	if w.body.Len() < maxCapturedBytes {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// Middleware wraps a state-changing route with operate-log recording.
//
// MUST run after the authentication middleware and any permission check, so
// that only calls that actually reach the handler are audited. The
// middleware:
// 1. Captures the actor id from the request context (absent → NULL, never
//    a failure; system-internal calls are still audited)
// 2. Buffers the request body and response body for serialization
// 3. Invokes the handler, passing its outcome through unchanged
// 4. On success (2xx/3xx status) appends exactly one operate-log record
//    with the resource, operation, params, result, and latency
//
// The append runs on a context detached from the request and bounded by
// writeTimeout: a log-store outage or slow write must never fail or stall
// the business response. Failed operations are not audited.
func Middleware(
	operateLogUC auditUseCase.OperateLogUseCase,
	className, methodName string,
	writeTimeout time.Duration,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params bytes.Buffer
		params.WriteString(c.Request.Method)
		params.WriteString(" ")
		params.WriteString(c.Request.URL.RequestURI())

		if c.Request.Body != nil {
			body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxCapturedBytes))
			if err == nil && len(body) > 0 {
				params.WriteString(" ")
				params.Write(body)
				// Restore the body for the handler; anything beyond the
				// capture cap is still readable downstream.
				c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), c.Request.Body))
			}
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		var actor *int64
		if id, ok := authHTTP.ActorID(c.Request.Context()); ok {
			actor = &id
		}

		start := time.Now()
		c.Next()
		cost := time.Since(start)

		if c.Writer.Status() >= 400 {
			return
		}

		operateLog := &auditDomain.OperateLog{
			OperateEmpID: actor,
			OperateTime:  time.Now().UTC(),
			ClassName:    className,
			MethodName:   methodName,
			MethodParams: truncate(params.String()),
			ReturnValue:  truncate(writer.body.String()),
			CostTime:     cost.Milliseconds(),
		}

		// Detached from the request context: the response is already
		// committed and the write must not inherit its cancellation.
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := operateLogUC.Record(ctx, operateLog); err != nil {
			logger.Error("failed to append operate log",
				slog.String("class_name", className),
				slog.String("method_name", methodName),
				slog.Any("error", err))
		}
	}
}

func truncate(s string) string {
	if len(s) > maxCapturedBytes {
		return s[:maxCapturedBytes]
	}
	return s
}
