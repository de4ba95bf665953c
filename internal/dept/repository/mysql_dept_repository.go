package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/tlias/tlias/internal/database"
	"github.com/tlias/tlias/internal/dept/domain"

	apperrors "github.com/tlias/tlias/internal/errors"
)

// MySQLDeptRepository handles department persistence for MySQL
type MySQLDeptRepository struct {
	db *sql.DB
}

// NewMySQLDeptRepository creates a new MySQLDeptRepository
func NewMySQLDeptRepository(db *sql.DB) *MySQLDeptRepository {
	return &MySQLDeptRepository{
		db: db,
	}
}

// Create inserts a new department and sets the generated ID
func (r *MySQLDeptRepository) Create(ctx context.Context, dept *domain.Dept) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO dept (name, create_time, update_time) VALUES (?, ?, ?)`

	result, err := querier.ExecContext(ctx, query, dept.Name, dept.CreateTime, dept.UpdateTime)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "department name already exists")
		}
		return apperrors.Wrap(err, "failed to create department")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get last insert id")
	}
	dept.ID = id
	return nil
}

// Update modifies an existing department
func (r *MySQLDeptRepository) Update(ctx context.Context, dept *domain.Dept) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE dept SET name = ?, update_time = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, dept.Name, dept.UpdateTime, dept.ID)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "department name already exists")
		}
		return apperrors.Wrap(err, "failed to update department")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "department not found")
	}
	return nil
}

// DeleteByID removes a department by ID
func (r *MySQLDeptRepository) DeleteByID(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM dept WHERE id = ?`
	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete department")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "department not found")
	}
	return nil
}

// GetByID retrieves a department by ID
func (r *MySQLDeptRepository) GetByID(ctx context.Context, id int64) (*domain.Dept, error) {
	querier := database.GetTx(ctx, r.db)

	var dept domain.Dept
	query := `SELECT id, name, create_time, update_time FROM dept WHERE id = ?`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&dept.ID, &dept.Name, &dept.CreateTime, &dept.UpdateTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "department not found")
		}
		return nil, apperrors.Wrap(err, "failed to get department by id")
	}
	return &dept, nil
}

// ListAll retrieves all departments
func (r *MySQLDeptRepository) ListAll(ctx context.Context) ([]*domain.Dept, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, create_time, update_time FROM dept ORDER BY update_time DESC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list departments")
	}
	defer rows.Close()

	var depts []*domain.Dept
	for rows.Next() {
		var dept domain.Dept
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.CreateTime, &dept.UpdateTime); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan department")
		}
		depts = append(depts, &dept)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate departments")
	}

	return depts, nil
}

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate key violation
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "error 1062")
}
