// Package usecase implements business logic orchestration for operate-log
// recording and listing.
package usecase

import (
	"context"

	"github.com/tlias/tlias/internal/audit/domain"
)

// OperateLogRepository defines operate-log persistence operations.
type OperateLogRepository interface {
	Create(ctx context.Context, operateLog *domain.OperateLog) error
	List(ctx context.Context, offset, limit int) ([]*domain.OperateLog, int64, error)
}

// OperateLogUseCase records and lists operate-log entries.
type OperateLogUseCase interface {
	// Record appends one operate-log entry. Callers that must not let audit
	// failures propagate (the audit middleware) handle the returned error
	// themselves instead of bubbling it up.
	Record(ctx context.Context, operateLog *domain.OperateLog) error

	// List retrieves operate-log entries ordered newest first.
	List(ctx context.Context, offset, limit int) ([]*domain.OperateLog, int64, error)
}
