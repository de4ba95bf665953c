package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlias/tlias/internal/emp/domain"
	apperrors "github.com/tlias/tlias/internal/errors"
)

func empRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "password", "name", "gender", "image", "job",
		"salary", "entry_date", "dept_id", "create_time", "update_time",
	})
}

func TestPostgreSQLEmpRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLEmpRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	emp := &domain.Emp{
		Username:   "songjiang",
		Password:   "hashed",
		Name:       "宋江",
		Gender:     1,
		Job:        2,
		Salary:     8000,
		CreateTime: now,
		UpdateTime: now,
	}

	mock.ExpectQuery("INSERT INTO emp").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	err = repo.Create(ctx, emp)
	require.NoError(t, err)
	assert.Equal(t, int64(42), emp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLEmpRepository_Create_DuplicateUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLEmpRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO emp").
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "uq_emp_username"`))

	err = repo.Create(ctx, &domain.Emp{Username: "songjiang"})
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
}

func TestPostgreSQLEmpRepository_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLEmpRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM emp WHERE username").
		WithArgs("songjiang").
		WillReturnRows(empRows().AddRow(
			int64(42), "songjiang", "hashed", "宋江", 1, "", 2, 8000, nil, nil, now, now,
		))

	emp, err := repo.GetByUsername(ctx, "songjiang")
	require.NoError(t, err)
	assert.Equal(t, int64(42), emp.ID)
	assert.Equal(t, "宋江", emp.Name)
	assert.Nil(t, emp.EntryDate)
	assert.Nil(t, emp.DeptID)
}

func TestPostgreSQLEmpRepository_GetByUsername_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLEmpRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM emp WHERE username").
		WithArgs("nobody").
		WillReturnRows(empRows())

	emp, err := repo.GetByUsername(ctx, "nobody")
	assert.Nil(t, emp)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestPostgreSQLEmpRepository_GetByID_WithExperiences(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLEmpRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	entryDate := now.AddDate(-2, 0, 0)
	deptID := int64(3)
	mock.ExpectQuery("SELECT (.+) FROM emp WHERE id").
		WithArgs(int64(42)).
		WillReturnRows(empRows().AddRow(
			int64(42), "songjiang", "hashed", "宋江", 1, "", 2, 8000, entryDate, deptID, now, now,
		))
	mock.ExpectQuery("SELECT (.+) FROM emp_expr WHERE emp_id").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "emp_id", "begin", "end", "company", "job"}).
			AddRow(int64(1), int64(42), now.AddDate(-5, 0, 0), now.AddDate(-3, 0, 0), "郓城县衙", "押司"))

	emp, err := repo.GetByID(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, emp.EntryDate)
	require.NotNil(t, emp.DeptID)
	assert.Equal(t, int64(3), *emp.DeptID)
	require.Len(t, emp.ExprList, 1)
	assert.Equal(t, "郓城县衙", emp.ExprList[0].Company)
}

func TestPostgreSQLEmpRepository_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLEmpRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE emp").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(ctx, &domain.Emp{ID: 99, Username: "songjiang"})
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestPostgreSQLEmpRepository_DeleteByIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLEmpRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM emp WHERE id IN").
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	err = repo.DeleteByIDs(ctx, []int64{1, 2, 3})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLEmpRepository_RoleByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLEmpRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT job FROM emp WHERE id").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"job"}).AddRow(3))

	role, err := repo.RoleByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 3, role)
}

func TestPostgreSQLEmpRepository_RoleByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLEmpRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT job FROM emp WHERE id").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"job"}))

	role, err := repo.RoleByID(ctx, 99)
	assert.Zero(t, role)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestPostgreSQLEmpRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLEmpRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("%宋%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT (.+) FROM emp WHERE name LIKE").
		WithArgs("%宋%", 10, 0).
		WillReturnRows(empRows().AddRow(
			int64(42), "songjiang", "hashed", "宋江", 1, "", 2, 8000, nil, nil, now, now,
		))

	emps, total, err := repo.List(ctx, domain.EmpFilter{Name: "宋"}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, emps, 1)
	assert.Equal(t, "songjiang", emps[0].Username)
}
