// Package repository provides data persistence implementations for employee
// entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tlias/tlias/internal/database"
	"github.com/tlias/tlias/internal/emp/domain"

	apperrors "github.com/tlias/tlias/internal/errors"
)

// PostgreSQLEmpRepository handles employee persistence for PostgreSQL
type PostgreSQLEmpRepository struct {
	db *sql.DB
}

// NewPostgreSQLEmpRepository creates a new PostgreSQLEmpRepository
func NewPostgreSQLEmpRepository(db *sql.DB) *PostgreSQLEmpRepository {
	return &PostgreSQLEmpRepository{
		db: db,
	}
}

// Create inserts a new employee and sets the generated ID
func (r *PostgreSQLEmpRepository) Create(ctx context.Context, emp *domain.Emp) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO emp (username, password, name, gender, image, job, salary, entry_date, dept_id, create_time, update_time)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		emp.Username, emp.Password, emp.Name, emp.Gender, emp.Image, emp.Job,
		emp.Salary, emp.EntryDate, emp.DeptID, emp.CreateTime, emp.UpdateTime,
	).Scan(&emp.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "username already exists")
		}
		return apperrors.Wrap(err, "failed to create employee")
	}
	return nil
}

// CreateExperiences inserts work-experience rows
func (r *PostgreSQLEmpRepository) CreateExperiences(ctx context.Context, exprs []domain.EmpExpr) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO emp_expr (emp_id, begin, "end", company, job)
			  VALUES ($1, $2, $3, $4, $5)`

	for i := range exprs {
		expr := &exprs[i]
		_, err := querier.ExecContext(ctx, query,
			expr.EmpID, expr.Begin, expr.End, expr.Company, expr.Job,
		)
		if err != nil {
			return apperrors.Wrap(err, "failed to create employee experience")
		}
	}
	return nil
}

// Update modifies an existing employee
func (r *PostgreSQLEmpRepository) Update(ctx context.Context, emp *domain.Emp) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE emp
			  SET username = $1, name = $2, gender = $3, image = $4, job = $5,
			      salary = $6, entry_date = $7, dept_id = $8, update_time = $9
			  WHERE id = $10`

	result, err := querier.ExecContext(ctx, query,
		emp.Username, emp.Name, emp.Gender, emp.Image, emp.Job,
		emp.Salary, emp.EntryDate, emp.DeptID, emp.UpdateTime, emp.ID,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "username already exists")
		}
		return apperrors.Wrap(err, "failed to update employee")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "employee not found")
	}
	return nil
}

// DeleteByIDs removes employees by their IDs
func (r *PostgreSQLEmpRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	querier := database.GetTx(ctx, r.db)

	placeholders, args := postgreSQLInPlaceholders(ids)
	query := fmt.Sprintf(`DELETE FROM emp WHERE id IN (%s)`, placeholders)

	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return apperrors.Wrap(err, "failed to delete employees")
	}
	return nil
}

// DeleteExperiencesByEmpIDs removes work-experience rows for the given employees
func (r *PostgreSQLEmpRepository) DeleteExperiencesByEmpIDs(ctx context.Context, empIDs []int64) error {
	querier := database.GetTx(ctx, r.db)

	placeholders, args := postgreSQLInPlaceholders(empIDs)
	query := fmt.Sprintf(`DELETE FROM emp_expr WHERE emp_id IN (%s)`, placeholders)

	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return apperrors.Wrap(err, "failed to delete employee experiences")
	}
	return nil
}

// GetByID retrieves an employee with work-experience rows
func (r *PostgreSQLEmpRepository) GetByID(ctx context.Context, id int64) (*domain.Emp, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password, name, gender, image, job, salary, entry_date, dept_id, create_time, update_time
			  FROM emp WHERE id = $1`

	emp, err := scanEmp(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "employee not found")
		}
		return nil, apperrors.Wrap(err, "failed to get employee by id")
	}

	exprQuery := `SELECT id, emp_id, begin, "end", company, job
				  FROM emp_expr WHERE emp_id = $1 ORDER BY id`

	rows, err := querier.QueryContext(ctx, exprQuery, id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get employee experiences")
	}
	defer rows.Close()

	for rows.Next() {
		var expr domain.EmpExpr
		if err := rows.Scan(&expr.ID, &expr.EmpID, &expr.Begin, &expr.End, &expr.Company, &expr.Job); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan employee experience")
		}
		emp.ExprList = append(emp.ExprList, expr)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate employee experiences")
	}

	return emp, nil
}

// GetByUsername retrieves an employee by username
func (r *PostgreSQLEmpRepository) GetByUsername(ctx context.Context, username string) (*domain.Emp, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password, name, gender, image, job, salary, entry_date, dept_id, create_time, update_time
			  FROM emp WHERE username = $1`

	emp, err := scanEmp(querier.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "employee not found")
		}
		return nil, apperrors.Wrap(err, "failed to get employee by username")
	}
	return emp, nil
}

// List retrieves employees matching the filter with the total count
func (r *PostgreSQLEmpRepository) List(
	ctx context.Context,
	filter domain.EmpFilter,
	offset, limit int,
) ([]*domain.Emp, int64, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := postgreSQLEmpFilter(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM emp` + where
	if err := querier.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count employees")
	}

	query := fmt.Sprintf(
		`SELECT id, username, password, name, gender, image, job, salary, entry_date, dept_id, create_time, update_time
		 FROM emp%s ORDER BY update_time DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list employees")
	}
	defer rows.Close()

	var emps []*domain.Emp
	for rows.Next() {
		emp, err := scanEmp(rows)
		if err != nil {
			return nil, 0, apperrors.Wrap(err, "failed to scan employee")
		}
		emps = append(emps, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to iterate employees")
	}

	return emps, total, nil
}

// ListAll retrieves all employees ordered by name
func (r *PostgreSQLEmpRepository) ListAll(ctx context.Context) ([]*domain.Emp, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password, name, gender, image, job, salary, entry_date, dept_id, create_time, update_time
			  FROM emp ORDER BY name`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	defer rows.Close()

	var emps []*domain.Emp
	for rows.Next() {
		emp, err := scanEmp(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan employee")
		}
		emps = append(emps, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate employees")
	}

	return emps, nil
}

// RoleByID retrieves the employee's job code, used as the role for
// authorization decisions
func (r *PostgreSQLEmpRepository) RoleByID(ctx context.Context, id int64) (int, error) {
	querier := database.GetTx(ctx, r.db)

	var role int
	query := `SELECT job FROM emp WHERE id = $1`
	if err := querier.QueryRowContext(ctx, query, id).Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.Wrap(apperrors.ErrNotFound, "employee not found")
		}
		return 0, apperrors.Wrap(err, "failed to get employee role")
	}
	return role, nil
}

// postgreSQLEmpFilter builds the WHERE clause for the page query
func postgreSQLEmpFilter(filter domain.EmpFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("name LIKE $%d", len(args)))
	}
	if filter.Gender != nil {
		args = append(args, *filter.Gender)
		conditions = append(conditions, fmt.Sprintf("gender = $%d", len(args)))
	}
	if filter.Begin != nil {
		args = append(args, *filter.Begin)
		conditions = append(conditions, fmt.Sprintf("entry_date >= $%d", len(args)))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		conditions = append(conditions, fmt.Sprintf("entry_date <= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// postgreSQLInPlaceholders builds $1,$2,... placeholders for an IN clause
func postgreSQLInPlaceholders(ids []int64) (string, []any) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	return strings.Join(placeholders, ", "), args
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEmp scans a full employee row
func scanEmp(row rowScanner) (*domain.Emp, error) {
	var emp domain.Emp
	var entryDate sql.NullTime
	var deptID sql.NullInt64

	err := row.Scan(
		&emp.ID, &emp.Username, &emp.Password, &emp.Name, &emp.Gender, &emp.Image,
		&emp.Job, &emp.Salary, &entryDate, &deptID, &emp.CreateTime, &emp.UpdateTime,
	)
	if err != nil {
		return nil, err
	}

	if entryDate.Valid {
		emp.EntryDate = &entryDate.Time
	}
	if deptID.Valid {
		emp.DeptID = &deptID.Int64
	}
	return &emp, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
