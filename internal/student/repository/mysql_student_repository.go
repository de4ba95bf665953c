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

// MySQLStudentRepository handles student persistence for MySQL
type MySQLStudentRepository struct {
	db *sql.DB
}

// NewMySQLStudentRepository creates a new MySQLStudentRepository
func NewMySQLStudentRepository(db *sql.DB) *MySQLStudentRepository {
	return &MySQLStudentRepository{
		db: db,
	}
}

// Create inserts a new student and sets the generated ID
func (r *MySQLStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO student (name, no, gender, phone, id_card, is_college, address, degree,
			      graduation_date, clazz_id, violation_count, violation_score, create_time, update_time)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		student.Name, student.No, student.Gender, student.Phone, student.IDCard,
		student.IsCollege, student.Address, student.Degree, student.GraduationDate,
		student.ClazzID, student.ViolationCount, student.ViolationScore,
		student.CreateTime, student.UpdateTime,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create student")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get last insert id")
	}
	student.ID = id
	return nil
}

// Update modifies an existing student
func (r *MySQLStudentRepository) Update(ctx context.Context, student *domain.Student) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE student
			  SET name = ?, no = ?, gender = ?, phone = ?, id_card = ?, is_college = ?,
			      address = ?, degree = ?, graduation_date = ?, clazz_id = ?, update_time = ?
			  WHERE id = ?`

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
func (r *MySQLStudentRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	querier := database.GetTx(ctx, r.db)

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`DELETE FROM student WHERE id IN (%s)`, strings.Join(placeholders, ", "))

	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return apperrors.Wrap(err, "failed to delete students")
	}
	return nil
}

// GetByID retrieves a student by ID
func (r *MySQLStudentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + studentColumns + ` FROM student WHERE id = ?`

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
func (r *MySQLStudentRepository) List(
	ctx context.Context,
	filter domain.StudentFilter,
	offset, limit int,
) ([]*domain.Student, int64, error) {
	querier := database.GetTx(ctx, r.db)

	var conditions []string
	var args []any

	if filter.Name != "" {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, "%"+filter.Name+"%")
	}
	if filter.Degree != nil {
		conditions = append(conditions, "degree = ?")
		args = append(args, *filter.Degree)
	}
	if filter.ClazzID != nil {
		conditions = append(conditions, "clazz_id = ?")
		args = append(args, *filter.ClazzID)
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

	query := `SELECT ` + studentColumns + ` FROM student` + where + ` ORDER BY update_time DESC LIMIT ? OFFSET ?`
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
func (r *MySQLStudentRepository) AddViolation(ctx context.Context, id int64, score int) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE student
			  SET violation_count = violation_count + 1,
			      violation_score = violation_score + ?,
			      update_time = NOW()
			  WHERE id = ?`

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
func (r *MySQLStudentRepository) CountByClazzID(ctx context.Context, clazzID int64) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	query := `SELECT COUNT(*) FROM student WHERE clazz_id = ?`
	if err := querier.QueryRowContext(ctx, query, clazzID).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count students by class")
	}
	return count, nil
}
