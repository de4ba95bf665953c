package usecase

import (
	"context"
	"time"

	"github.com/tlias/tlias/internal/audit/domain"
	apperrors "github.com/tlias/tlias/internal/errors"
)

// operateLogUseCase implements OperateLogUseCase.
type operateLogUseCase struct {
	operateLogRepo OperateLogRepository
}

// NewOperateLogUseCase creates a new OperateLogUseCase with the provided repository.
func NewOperateLogUseCase(operateLogRepo OperateLogRepository) OperateLogUseCase {
	return &operateLogUseCase{
		operateLogRepo: operateLogRepo,
	}
}

// Record persists one operate-log entry, stamping the operate time when the
// caller left it zero.
func (u *operateLogUseCase) Record(ctx context.Context, operateLog *domain.OperateLog) error {
	if operateLog.OperateTime.IsZero() {
		operateLog.OperateTime = time.Now().UTC()
	}

	if err := u.operateLogRepo.Create(ctx, operateLog); err != nil {
		return apperrors.Wrap(err, "failed to record operate log")
	}

	return nil
}

// List retrieves operate-log entries ordered newest first with pagination.
func (u *operateLogUseCase) List(ctx context.Context, offset, limit int) ([]*domain.OperateLog, int64, error) {
	operateLogs, total, err := u.operateLogRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list operate logs")
	}

	return operateLogs, total, nil
}
