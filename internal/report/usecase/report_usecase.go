package usecase

import (
	"context"

	apperrors "github.com/tlias/tlias/internal/errors"
	"github.com/tlias/tlias/internal/report/domain"
)

// reportUseCase implements ReportUseCase.
type reportUseCase struct {
	reportRepo ReportRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(reportRepo ReportRepository) ReportUseCase {
	return &reportUseCase{reportRepo: reportRepo}
}

// EmpJobData counts employees per job code and returns the chart option.
func (u *reportUseCase) EmpJobData(ctx context.Context) (domain.ChartOption, error) {
	items, err := u.reportRepo.EmpJobCounts(ctx)
	if err != nil {
		return domain.ChartOption{}, apperrors.Wrap(err, "failed to count employees by job")
	}
	return domain.OptionFromItems(items), nil
}

// EmpGenderData counts employees per gender.
func (u *reportUseCase) EmpGenderData(ctx context.Context) ([]domain.CountItem, error) {
	items, err := u.reportRepo.EmpGenderCounts(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to count employees by gender")
	}
	return items, nil
}

// StudentDegreeData counts students per degree level.
func (u *reportUseCase) StudentDegreeData(ctx context.Context) ([]domain.CountItem, error) {
	items, err := u.reportRepo.StudentDegreeCounts(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to count students by degree")
	}
	return items, nil
}

// StudentCountData counts students per class and returns the chart option.
func (u *reportUseCase) StudentCountData(ctx context.Context) (domain.ChartOption, error) {
	items, err := u.reportRepo.StudentCountsByClazz(ctx)
	if err != nil {
		return domain.ChartOption{}, apperrors.Wrap(err, "failed to count students by class")
	}
	return domain.OptionFromItems(items), nil
}
