package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tlias/tlias/internal/clazz/domain"
	apperrors "github.com/tlias/tlias/internal/errors"
)

func clazzRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "room", "begin_date", "end_date", "master_id", "subject", "create_time", "update_time",
	})
}

func TestPostgreSQLClazzRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLClazzRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	clazz := &domain.Clazz{Name: "金牌大师班5期", Room: "212", Subject: 2, CreateTime: now, UpdateTime: now}

	mock.ExpectQuery("INSERT INTO clazz").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	err = repo.Create(ctx, clazz)
	require.NoError(t, err)
	assert.Equal(t, int64(5), clazz.ID)
}

func TestPostgreSQLClazzRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLClazzRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	begin := now.AddDate(0, -3, 0)
	end := now.AddDate(0, 3, 0)
	masterID := int64(42)
	mock.ExpectQuery("SELECT (.+) FROM clazz WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(clazzRows().AddRow(
			int64(5), "金牌大师班5期", "212", begin, end, masterID, 2, now, now,
		))

	clazz, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "金牌大师班5期", clazz.Name)
	require.NotNil(t, clazz.BeginDate)
	require.NotNil(t, clazz.MasterID)
	assert.Equal(t, int64(42), *clazz.MasterID)
}

func TestPostgreSQLClazzRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLClazzRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM clazz WHERE id").
		WithArgs(int64(99)).
		WillReturnRows(clazzRows())

	clazz, err := repo.GetByID(ctx, 99)
	assert.Nil(t, clazz)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestPostgreSQLClazzRepository_DeleteByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLClazzRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM clazz WHERE id").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteByID(ctx, 99)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestPostgreSQLClazzRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLClazzRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("%大师%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT (.+) FROM clazz WHERE name LIKE").
		WithArgs("%大师%", 10, 0).
		WillReturnRows(clazzRows().AddRow(
			int64(5), "金牌大师班5期", "212", nil, nil, nil, 2, now, now,
		))

	clazzs, total, err := repo.List(ctx, domain.ClazzFilter{Name: "大师"}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, clazzs, 1)
	assert.Nil(t, clazzs[0].MasterID)
}

func TestPostgreSQLClazzRepository_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLClazzRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM clazz ORDER BY name").
		WillReturnRows(clazzRows().
			AddRow(int64(1), "JavaEE就业1期", "101", nil, nil, nil, 1, now, now).
			AddRow(int64(5), "金牌大师班5期", "212", nil, nil, nil, 2, now, now))

	clazzs, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, clazzs, 2)
}
