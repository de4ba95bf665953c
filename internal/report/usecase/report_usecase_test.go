package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tlias/tlias/internal/report/domain"
)

// MockReportRepository is a mock implementation of ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) EmpJobCounts(ctx context.Context) ([]domain.CountItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountItem), args.Error(1)
}

func (m *MockReportRepository) EmpGenderCounts(ctx context.Context) ([]domain.CountItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountItem), args.Error(1)
}

func (m *MockReportRepository) StudentDegreeCounts(ctx context.Context) ([]domain.CountItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountItem), args.Error(1)
}

func (m *MockReportRepository) StudentCountsByClazz(ctx context.Context) ([]domain.CountItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CountItem), args.Error(1)
}

func TestReportUseCase_EmpJobData(t *testing.T) {
	repo := &MockReportRepository{}
	useCase := NewReportUseCase(repo)

	ctx := context.Background()
	repo.On("EmpJobCounts", ctx).Return([]domain.CountItem{
		{Name: "班主任", Value: 3},
		{Name: "讲师", Value: 7},
	}, nil)

	option, err := useCase.EmpJobData(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"班主任", "讲师"}, option.Labels)
	assert.Equal(t, []int64{3, 7}, option.Values)
}

func TestReportUseCase_EmpGenderData(t *testing.T) {
	repo := &MockReportRepository{}
	useCase := NewReportUseCase(repo)

	ctx := context.Background()
	expected := []domain.CountItem{{Name: "男", Value: 12}, {Name: "女", Value: 8}}
	repo.On("EmpGenderCounts", ctx).Return(expected, nil)

	items, err := useCase.EmpGenderData(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestReportUseCase_StudentCountData_Empty(t *testing.T) {
	repo := &MockReportRepository{}
	useCase := NewReportUseCase(repo)

	ctx := context.Background()
	repo.On("StudentCountsByClazz", ctx).Return([]domain.CountItem{}, nil)

	option, err := useCase.StudentCountData(ctx)
	require.NoError(t, err)
	assert.Empty(t, option.Labels)
	assert.Empty(t, option.Values)
}

func TestReportUseCase_StudentDegreeData_Error(t *testing.T) {
	repo := &MockReportRepository{}
	useCase := NewReportUseCase(repo)

	ctx := context.Background()
	repo.On("StudentDegreeCounts", ctx).Return(nil, assert.AnError)

	items, err := useCase.StudentDegreeData(ctx)
	assert.Error(t, err)
	assert.Nil(t, items)
}
