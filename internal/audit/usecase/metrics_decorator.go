package usecase

import (
	"context"
	"time"

	"github.com/tlias/tlias/internal/audit/domain"
	"github.com/tlias/tlias/internal/metrics"
)

// metricsDecorator wraps an OperateLogUseCase with business metrics recording.
type metricsDecorator struct {
	inner           OperateLogUseCase
	businessMetrics metrics.BusinessMetrics
}

// NewMetricsDecorator returns an OperateLogUseCase that records operation
// counts and durations around the wrapped use case.
func NewMetricsDecorator(inner OperateLogUseCase, businessMetrics metrics.BusinessMetrics) OperateLogUseCase {
	return &metricsDecorator{
		inner:           inner,
		businessMetrics: businessMetrics,
	}
}

// Record delegates to the wrapped use case and records the outcome.
func (d *metricsDecorator) Record(ctx context.Context, operateLog *domain.OperateLog) error {
	start := time.Now()
	err := d.inner.Record(ctx, operateLog)
	d.record(ctx, "operate_log_record", start, err)
	return err
}

// List delegates to the wrapped use case and records the outcome.
func (d *metricsDecorator) List(ctx context.Context, offset, limit int) ([]*domain.OperateLog, int64, error) {
	start := time.Now()
	operateLogs, total, err := d.inner.List(ctx, offset, limit)
	d.record(ctx, "operate_log_list", start, err)
	return operateLogs, total, err
}

func (d *metricsDecorator) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	d.businessMetrics.RecordOperation(ctx, "audit", operation, status)
	d.businessMetrics.RecordDuration(ctx, "audit", operation, time.Since(start), status)
}
