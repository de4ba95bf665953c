// Package repository provides data persistence implementations for department
// entities.
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

// PostgreSQLDeptRepository handles department persistence for PostgreSQL
type PostgreSQLDeptRepository struct {
	db *sql.DB
}

// NewPostgreSQLDeptRepository creates a new PostgreSQLDeptRepository
func NewPostgreSQLDeptRepository(db *sql.DB) *PostgreSQLDeptRepository {
	return &PostgreSQLDeptRepository{
		db: db,
	}
}

// Create inserts a new department and sets the generated ID
func (r *PostgreSQLDeptRepository) Create(ctx context.Context, dept *domain.Dept) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO dept (name, create_time, update_time)
			  VALUES ($1, $2, $3)
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query, dept.Name, dept.CreateTime, dept.UpdateTime).Scan(&dept.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return apperrors.Wrap(apperrors.ErrConflict, "department name already exists")
		}
		return apperrors.Wrap(err, "failed to create department")
	}
	return nil
}

// Update modifies an existing department
func (r *PostgreSQLDeptRepository) Update(ctx context.Context, dept *domain.Dept) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE dept SET name = $1, update_time = $2 WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, dept.Name, dept.UpdateTime, dept.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
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
func (r *PostgreSQLDeptRepository) DeleteByID(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM dept WHERE id = $1`
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
func (r *PostgreSQLDeptRepository) GetByID(ctx context.Context, id int64) (*domain.Dept, error) {
	querier := database.GetTx(ctx, r.db)

	var dept domain.Dept
	query := `SELECT id, name, create_time, update_time FROM dept WHERE id = $1`

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
func (r *PostgreSQLDeptRepository) ListAll(ctx context.Context) ([]*domain.Dept, error) {
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

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
