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

// MySQLEmpRepository handles employee persistence for MySQL
type MySQLEmpRepository struct {
	db *sql.DB
}

// NewMySQLEmpRepository creates a new MySQLEmpRepository
func NewMySQLEmpRepository(db *sql.DB) *MySQLEmpRepository {
	return &MySQLEmpRepository{
		db: db,
	}
}

// Create inserts a new employee and sets the generated ID
func (r *MySQLEmpRepository) Create(ctx context.Context, emp *domain.Emp) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO emp (username, password, name, gender, image, job, salary, entry_date, dept_id, create_time, update_time)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		emp.Username, emp.Password, emp.Name, emp.Gender, emp.Image, emp.Job,
		emp.Salary, emp.EntryDate, emp.DeptID, emp.CreateTime, emp.UpdateTime,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "username already exists")
		}
		return apperrors.Wrap(err, "failed to create employee")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get last insert id")
	}
	emp.ID = id
	return nil
}

// CreateExperiences inserts work-experience rows
func (r *MySQLEmpRepository) CreateExperiences(ctx context.Context, exprs []domain.EmpExpr) error {
	querier := database.GetTx(ctx, r.db)

	query := "INSERT INTO emp_expr (emp_id, `begin`, `end`, company, job) VALUES (?, ?, ?, ?, ?)"

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
func (r *MySQLEmpRepository) Update(ctx context.Context, emp *domain.Emp) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE emp
			  SET username = ?, name = ?, gender = ?, image = ?, job = ?,
			      salary = ?, entry_date = ?, dept_id = ?, update_time = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(ctx, query,
		emp.Username, emp.Name, emp.Gender, emp.Image, emp.Job,
		emp.Salary, emp.EntryDate, emp.DeptID, emp.UpdateTime, emp.ID,
	)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
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
func (r *MySQLEmpRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	querier := database.GetTx(ctx, r.db)

	placeholders, args := mySQLInPlaceholders(ids)
	query := fmt.Sprintf(`DELETE FROM emp WHERE id IN (%s)`, placeholders)

	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return apperrors.Wrap(err, "failed to delete employees")
	}
	return nil
}

// DeleteExperiencesByEmpIDs removes work-experience rows for the given employees
func (r *MySQLEmpRepository) DeleteExperiencesByEmpIDs(ctx context.Context, empIDs []int64) error {
	querier := database.GetTx(ctx, r.db)

	placeholders, args := mySQLInPlaceholders(empIDs)
	query := fmt.Sprintf(`DELETE FROM emp_expr WHERE emp_id IN (%s)`, placeholders)

	if _, err := querier.ExecContext(ctx, query, args...); err != nil {
		return apperrors.Wrap(err, "failed to delete employee experiences")
	}
	return nil
}

// GetByID retrieves an employee with work-experience rows
func (r *MySQLEmpRepository) GetByID(ctx context.Context, id int64) (*domain.Emp, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password, name, gender, image, job, salary, entry_date, dept_id, create_time, update_time
			  FROM emp WHERE id = ?`

	emp, err := scanEmp(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "employee not found")
		}
		return nil, apperrors.Wrap(err, "failed to get employee by id")
	}

	exprQuery := "SELECT id, emp_id, `begin`, `end`, company, job FROM emp_expr WHERE emp_id = ? ORDER BY id"

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
func (r *MySQLEmpRepository) GetByUsername(ctx context.Context, username string) (*domain.Emp, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password, name, gender, image, job, salary, entry_date, dept_id, create_time, update_time
			  FROM emp WHERE username = ?`

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
func (r *MySQLEmpRepository) List(
	ctx context.Context,
	filter domain.EmpFilter,
	offset, limit int,
) ([]*domain.Emp, int64, error) {
	querier := database.GetTx(ctx, r.db)

	where, args := mySQLEmpFilter(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM emp` + where
	if err := querier.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count employees")
	}

	query := `SELECT id, username, password, name, gender, image, job, salary, entry_date, dept_id, create_time, update_time
			  FROM emp` + where + ` ORDER BY update_time DESC LIMIT ? OFFSET ?`
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
func (r *MySQLEmpRepository) ListAll(ctx context.Context) ([]*domain.Emp, error) {
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
func (r *MySQLEmpRepository) RoleByID(ctx context.Context, id int64) (int, error) {
	querier := database.GetTx(ctx, r.db)

	var role int
	query := `SELECT job FROM emp WHERE id = ?`
	if err := querier.QueryRowContext(ctx, query, id).Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.Wrap(apperrors.ErrNotFound, "employee not found")
		}
		return 0, apperrors.Wrap(err, "failed to get employee role")
	}
	return role, nil
}

// mySQLEmpFilter builds the WHERE clause for the page query
func mySQLEmpFilter(filter domain.EmpFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Name != "" {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, "%"+filter.Name+"%")
	}
	if filter.Gender != nil {
		conditions = append(conditions, "gender = ?")
		args = append(args, *filter.Gender)
	}
	if filter.Begin != nil {
		conditions = append(conditions, "entry_date >= ?")
		args = append(args, *filter.Begin)
	}
	if filter.End != nil {
		conditions = append(conditions, "entry_date <= ?")
		args = append(args, *filter.End)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// mySQLInPlaceholders builds ?,?,... placeholders for an IN clause
func mySQLInPlaceholders(ids []int64) (string, []any) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	return strings.Join(placeholders, ", "), args
}

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate key violation
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
