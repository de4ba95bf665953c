package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/tlias/tlias/internal/errors"
	"github.com/tlias/tlias/internal/student/domain"
)

func studentRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "no", "gender", "phone", "id_card", "is_college", "address", "degree",
		"graduation_date", "clazz_id", "violation_count", "violation_score", "create_time", "update_time",
	})
}

func TestPostgreSQLStudentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLStudentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	student := &domain.Student{
		Name:       "武松",
		No:         "2024010101",
		Gender:     1,
		Phone:      "13812345678",
		IDCard:     "110002199008084334",
		IsCollege:  1,
		Address:    "山东清河县",
		Degree:     4,
		CreateTime: now,
		UpdateTime: now,
	}

	mock.ExpectQuery("INSERT INTO student").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	err = repo.Create(ctx, student)
	require.NoError(t, err)
	assert.Equal(t, int64(11), student.ID)
}

func TestPostgreSQLStudentRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLStudentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	graduation := now.AddDate(1, 0, 0)
	mock.ExpectQuery("SELECT (.+) FROM student WHERE id").
		WithArgs(int64(11)).
		WillReturnRows(studentRows().AddRow(
			int64(11), "武松", "2024010101", 1, "13812345678", "110002199008084334",
			1, "山东清河县", 4, graduation, int64(3), 2, 12, now, now,
		))

	student, err := repo.GetByID(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "武松", student.Name)
	require.NotNil(t, student.GraduationDate)
	require.NotNil(t, student.ClazzID)
	assert.Equal(t, int64(3), *student.ClazzID)
	assert.Equal(t, 2, student.ViolationCount)
	assert.Equal(t, 12, student.ViolationScore)
}

func TestPostgreSQLStudentRepository_GetByID_NullFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLStudentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM student WHERE id").
		WithArgs(int64(11)).
		WillReturnRows(studentRows().AddRow(
			int64(11), "武松", "2024010101", 1, "13812345678", "110002199008084334",
			1, "", 4, nil, nil, 0, 0, now, now,
		))

	student, err := repo.GetByID(ctx, 11)
	require.NoError(t, err)
	assert.Nil(t, student.GraduationDate)
	assert.Nil(t, student.ClazzID)
}

func TestPostgreSQLStudentRepository_AddViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLStudentRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE student").
		WithArgs(10, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.AddViolation(ctx, 11, 10)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLStudentRepository_AddViolation_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLStudentRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE student").
		WithArgs(10, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.AddViolation(ctx, 99, 10)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestPostgreSQLStudentRepository_CountByClazzID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLStudentRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))

	count, err := repo.CountByClazzID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestPostgreSQLStudentRepository_List_WithFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLStudentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	degree := 4
	filter := domain.StudentFilter{Name: "武", Degree: &degree}

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("%武%", 4).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT (.+) FROM student WHERE name LIKE").
		WithArgs("%武%", 4, 10, 0).
		WillReturnRows(studentRows().AddRow(
			int64(11), "武松", "2024010101", 1, "13812345678", "110002199008084334",
			1, "", 4, nil, nil, 0, 0, now, now,
		))

	students, total, err := repo.List(ctx, filter, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, students, 1)
	assert.Equal(t, "武松", students[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLStudentRepository_DeleteByIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLStudentRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM student WHERE id IN").
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err = repo.DeleteByIDs(ctx, []int64{1, 2})
	assert.NoError(t, err)
}
