package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tlias/tlias/internal/audit/domain"
)

// MockOperateLogRepository is a mock implementation of OperateLogRepository
type MockOperateLogRepository struct {
	mock.Mock
}

func (m *MockOperateLogRepository) Create(ctx context.Context, operateLog *domain.OperateLog) error {
	args := m.Called(ctx, operateLog)
	return args.Error(0)
}

func (m *MockOperateLogRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.OperateLog, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.OperateLog), args.Get(1).(int64), args.Error(2)
}

func TestOperateLogUseCase_Record_Success(t *testing.T) {
	repo := &MockOperateLogRepository{}
	useCase := NewOperateLogUseCase(repo)

	ctx := context.Background()
	empID := int64(42)
	operateLog := &domain.OperateLog{
		OperateEmpID: &empID,
		OperateTime:  time.Now().UTC(),
		ClassName:    "emp",
		MethodName:   "create",
		MethodParams: `POST /emps {"username":"x"}`,
		ReturnValue:  `{"id":1}`,
		CostTime:     12,
	}

	repo.On("Create", ctx, operateLog).Return(nil)

	err := useCase.Record(ctx, operateLog)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestOperateLogUseCase_Record_StampsZeroOperateTime(t *testing.T) {
	repo := &MockOperateLogRepository{}
	useCase := NewOperateLogUseCase(repo)

	ctx := context.Background()
	operateLog := &domain.OperateLog{ClassName: "dept", MethodName: "delete"}

	repo.On("Create", ctx, operateLog).Return(nil)

	err := useCase.Record(ctx, operateLog)
	require.NoError(t, err)
	assert.False(t, operateLog.OperateTime.IsZero())
}

func TestOperateLogUseCase_Record_RepositoryError(t *testing.T) {
	repo := &MockOperateLogRepository{}
	useCase := NewOperateLogUseCase(repo)

	ctx := context.Background()
	operateLog := &domain.OperateLog{ClassName: "emp", MethodName: "create"}

	repo.On("Create", ctx, operateLog).Return(assert.AnError)

	err := useCase.Record(ctx, operateLog)
	assert.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestOperateLogUseCase_List(t *testing.T) {
	repo := &MockOperateLogRepository{}
	useCase := NewOperateLogUseCase(repo)

	ctx := context.Background()
	expected := []*domain.OperateLog{
		{ID: 2, ClassName: "emp", MethodName: "update"},
		{ID: 1, ClassName: "emp", MethodName: "create"},
	}

	repo.On("List", ctx, 0, 10).Return(expected, int64(2), nil)

	operateLogs, total, err := useCase.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, expected, operateLogs)
}

func TestOperateLogUseCase_List_RepositoryError(t *testing.T) {
	repo := &MockOperateLogRepository{}
	useCase := NewOperateLogUseCase(repo)

	ctx := context.Background()
	repo.On("List", ctx, 0, 10).Return(nil, int64(0), assert.AnError)

	operateLogs, total, err := useCase.List(ctx, 0, 10)
	assert.Error(t, err)
	assert.Nil(t, operateLogs)
	assert.Zero(t, total)
}
