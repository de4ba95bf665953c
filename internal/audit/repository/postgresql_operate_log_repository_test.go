package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlias/tlias/internal/audit/domain"
)

func TestPostgreSQLOperateLogRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLOperateLogRepository(db)
	ctx := context.Background()

	empID := int64(42)
	operateLog := &domain.OperateLog{
		OperateEmpID: &empID,
		OperateTime:  time.Now().UTC(),
		ClassName:    "emp",
		MethodName:   "create",
		MethodParams: `POST /emps {"name":"宋江"}`,
		ReturnValue:  `{"code":1}`,
		CostTime:     12,
	}

	mock.ExpectQuery("INSERT INTO operate_log").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(101)))

	err = repo.Create(ctx, operateLog)
	require.NoError(t, err)
	assert.Equal(t, int64(101), operateLog.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLOperateLogRepository_Create_NilActor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLOperateLogRepository(db)
	ctx := context.Background()

	operateLog := &domain.OperateLog{
		OperateTime: time.Now().UTC(),
		ClassName:   "student",
		MethodName:  "delete",
	}

	mock.ExpectQuery("INSERT INTO operate_log").
		WithArgs(nil, operateLog.OperateTime, "student", "delete", "", "", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(102)))

	err = repo.Create(ctx, operateLog)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLOperateLogRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLOperateLogRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(25)))
	mock.ExpectQuery("SELECT (.+) FROM operate_log ORDER BY id DESC").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "operate_emp_id", "operate_time", "class_name", "method_name",
			"method_params", "return_value", "cost_time",
		}).
			AddRow(int64(25), int64(42), now, "emp", "create", "POST /emps", `{"code":1}`, int64(12)).
			AddRow(int64(24), nil, now, "student", "delete", "DELETE /students/3", `{"code":1}`, int64(5)))

	operateLogs, total, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	require.Len(t, operateLogs, 2)
	require.NotNil(t, operateLogs[0].OperateEmpID)
	assert.Equal(t, int64(42), *operateLogs[0].OperateEmpID)
	assert.Nil(t, operateLogs[1].OperateEmpID)
}

func TestPostgreSQLOperateLogRepository_List_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLOperateLogRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery("SELECT (.+) FROM operate_log ORDER BY id DESC").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "operate_emp_id", "operate_time", "class_name", "method_name",
			"method_params", "return_value", "cost_time",
		}))

	operateLogs, total, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, operateLogs)
	assert.Empty(t, operateLogs)
}
