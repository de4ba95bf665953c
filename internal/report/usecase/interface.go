// Package usecase implements the reporting business logic.
package usecase

import (
	"context"

	"github.com/tlias/tlias/internal/report/domain"
)

// ReportRepository defines the aggregate count queries behind the report
// endpoints. Buckets come back keyed by raw code; the use case attaches
// display names.
type ReportRepository interface {
	EmpJobCounts(ctx context.Context) ([]domain.CountItem, error)
	EmpGenderCounts(ctx context.Context) ([]domain.CountItem, error)
	StudentDegreeCounts(ctx context.Context) ([]domain.CountItem, error)
	StudentCountsByClazz(ctx context.Context) ([]domain.CountItem, error)
}

// ReportUseCase defines the read-only report operations.
type ReportUseCase interface {
	EmpJobData(ctx context.Context) (domain.ChartOption, error)
	EmpGenderData(ctx context.Context) ([]domain.CountItem, error)
	StudentDegreeData(ctx context.Context) ([]domain.CountItem, error)
	StudentCountData(ctx context.Context) (domain.ChartOption, error)
}
