// Package repository provides data persistence implementations for student
// entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tlias/tlias/internal/database"
	"github.com/tlias/tlias/internal/student/domain"

	apperrors "github.com/tlias/tlias/internal/errors"
)

const studentColumns = `id, name, no, gender, phone, id_card, is_college, address, degree,
	graduation_date, clazz_id, violation_count, violation_score, create_time, update_time`

// PostgreSQLStudentRepository handles student persistence for PostgreSQL
type PostgreSQLStudentRepository struct {
	db *sql.DB
}

// NewPostgreSQLStudentRepository creates a new PostgreSQLStudentRepository
func NewPostgreSQLStudentRepository(db *sql.DB) *PostgreSQLStudentRepository {
	return &PostgreSQLStudentRepository{
		db: db,
	}
}

// Create inserts a new student and sets the generated ID
func (r *PostgreSQLStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO student (name, no, gender, phone, id_card, is_college, address, degree,
			      graduation_date, clazz_id, violation_count, violation_score, create_time, update_time)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		student.Name, student.No, student.Gender, student.Phone, student.IDCard,
		student.IsCollege, student.Address, student.Degree, student.GraduationDate,
		student.ClazzID, student.ViolationCount, student.ViolationScore,
		student.CreateTime, student.UpdateTime,
	).Scan(&student.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create student")
	}
	return nil
}

// Update modifies an existing student
func (r *PostgreSQLStudentRepository) Update(ctx context.Context, student *domain.Student) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE student
			  SET name = $1, no = $2, gender = $3, phone = $4, id_card = $5, is_college = $6,
			      address = $7, degree = $8, graduation_date = $9, clazz_id = $10, update_time = $11
			  WHERE id = $12`

	result, err := querier.ExecContext(ctx, query,
		student.Name, student.No, student.Gender, student.Phone, student.IDCard,
		student.IsCollege, student.Address, student.Degree, student.GraduationDate,
		student.ClazzID, student.UpdateTime, student.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update student")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "student not found")
	}
	return nil
}

// DeleteByIDs removes students by their IDs
func (r *PostgreSQLStudentRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	querier := database.GetTx(ctx, r.db)

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf(`DELETE FROM student WHERE id IN (%s)`, strings.Join(placeholders, ", "))

	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return apperrors.Wrap(err, "failed to delete students")
	}
	return nil
}

// GetByID retrieves a student by ID
func (r *PostgreSQLStudentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + studentColumns + ` FROM student WHERE id = $1`

	student, err := scanStudent(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "student not found")
		}
		return nil, apperrors.Wrap(err, "failed to get student by id")
	}
	return student, nil
}

// List retrieves students matching the filter with the total count
func (r *PostgreSQLStudentRepository) List(
	ctx context.Context,
	filter domain.StudentFilter,
	offset, limit int,
) ([]*domain.Student, int64, error) {
	querier := database.GetTx(ctx, r.db)

	var conditions []string
	var args []any

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("name LIKE $%d", len(args)))
	}
	if filter.Degree != nil {
		args = append(args, *filter.Degree)
		conditions = append(conditions, fmt.Sprintf("degree = $%d", len(args)))
	}
	if filter.ClazzID != nil {
		args = append(args, *filter.ClazzID)
		conditions = append(conditions, fmt.Sprintf("clazz_id = $%d", len(args)))
	}

	var where string
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM student` + where
	if err := querier.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count students")
	}

	query := fmt.Sprintf(
		`SELECT `+studentColumns+` FROM student%s ORDER BY update_time DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list students")
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, apperrors.Wrap(err, "failed to scan student")
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to iterate students")
	}

	return students, total, nil
}

// AddViolation increments the violation count and score
func (r *PostgreSQLStudentRepository) AddViolation(ctx context.Context, id int64, score int) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE student
			  SET violation_count = violation_count + 1,
			      violation_score = violation_score + $1,
			      update_time = NOW()
			  WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, score, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to record violation")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "student not found")
	}
	return nil
}

// CountByClazzID reports how many students belong to a class
func (r *PostgreSQLStudentRepository) CountByClazzID(ctx context.Context, clazzID int64) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	query := `SELECT COUNT(*) FROM student WHERE clazz_id = $1`
	if err := querier.QueryRowContext(ctx, query, clazzID).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count students by class")
	}
	return count, nil
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanStudent scans a full student row
func scanStudent(row rowScanner) (*domain.Student, error) {
	var student domain.Student
	var graduationDate sql.NullTime
	var clazzID sql.NullInt64

	err := row.Scan(
		&student.ID, &student.Name, &student.No, &student.Gender, &student.Phone,
		&student.IDCard, &student.IsCollege, &student.Address, &student.Degree,
		&graduationDate, &clazzID, &student.ViolationCount, &student.ViolationScore,
		&student.CreateTime, &student.UpdateTime,
	)
	if err != nil {
		return nil, err
	}

	if graduationDate.Valid {
		student.GraduationDate = &graduationDate.Time
	}
	if clazzID.Valid {
		student.ClazzID = &clazzID.Int64
	}
	return &student, nil
}
