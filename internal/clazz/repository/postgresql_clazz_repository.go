// Package repository provides data persistence implementations for class
// entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tlias/tlias/internal/clazz/domain"
	"github.com/tlias/tlias/internal/database"

	apperrors "github.com/tlias/tlias/internal/errors"
)

const clazzColumns = `id, name, room, begin_date, end_date, master_id, subject, create_time, update_time`

// PostgreSQLClazzRepository handles class persistence for PostgreSQL
type PostgreSQLClazzRepository struct {
	db *sql.DB
}

// NewPostgreSQLClazzRepository creates a new PostgreSQLClazzRepository
func NewPostgreSQLClazzRepository(db *sql.DB) *PostgreSQLClazzRepository {
	return &PostgreSQLClazzRepository{
		db: db,
	}
}

// Create inserts a new class and sets the generated ID
func (r *PostgreSQLClazzRepository) Create(ctx context.Context, clazz *domain.Clazz) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO clazz (name, room, begin_date, end_date, master_id, subject, create_time, update_time)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		clazz.Name, clazz.Room, clazz.BeginDate, clazz.EndDate, clazz.MasterID,
		clazz.Subject, clazz.CreateTime, clazz.UpdateTime,
	).Scan(&clazz.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create class")
	}
	return nil
}

// Update modifies an existing class
func (r *PostgreSQLClazzRepository) Update(ctx context.Context, clazz *domain.Clazz) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE clazz
			  SET name = $1, room = $2, begin_date = $3, end_date = $4,
			      master_id = $5, subject = $6, update_time = $7
			  WHERE id = $8`

	result, err := querier.ExecContext(ctx, query,
		clazz.Name, clazz.Room, clazz.BeginDate, clazz.EndDate, clazz.MasterID,
		clazz.Subject, clazz.UpdateTime, clazz.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update class")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "class not found")
	}
	return nil
}

// DeleteByID removes a class by ID
func (r *PostgreSQLClazzRepository) DeleteByID(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM clazz WHERE id = $1`
	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete class")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "class not found")
	}
	return nil
}

// GetByID retrieves a class by ID
func (r *PostgreSQLClazzRepository) GetByID(ctx context.Context, id int64) (*domain.Clazz, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + clazzColumns + ` FROM clazz WHERE id = $1`

	clazz, err := scanClazz(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "class not found")
		}
		return nil, apperrors.Wrap(err, "failed to get class by id")
	}
	return clazz, nil
}

// List retrieves classes matching the filter with the total count
func (r *PostgreSQLClazzRepository) List(
	ctx context.Context,
	filter domain.ClazzFilter,
	offset, limit int,
) ([]*domain.Clazz, int64, error) {
	querier := database.GetTx(ctx, r.db)

	var conditions []string
	var args []any

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("name LIKE $%d", len(args)))
	}
	if filter.Begin != nil {
		args = append(args, *filter.Begin)
		conditions = append(conditions, fmt.Sprintf("begin_date >= $%d", len(args)))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		conditions = append(conditions, fmt.Sprintf("end_date <= $%d", len(args)))
	}

	var where string
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM clazz` + where
	if err := querier.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count classes")
	}

	query := fmt.Sprintf(
		`SELECT `+clazzColumns+` FROM clazz%s ORDER BY update_time DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list classes")
	}
	defer rows.Close()

	var clazzs []*domain.Clazz
	for rows.Next() {
		clazz, err := scanClazz(rows)
		if err != nil {
			return nil, 0, apperrors.Wrap(err, "failed to scan class")
		}
		clazzs = append(clazzs, clazz)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to iterate classes")
	}

	return clazzs, total, nil
}

// ListAll retrieves all classes
func (r *PostgreSQLClazzRepository) ListAll(ctx context.Context) ([]*domain.Clazz, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + clazzColumns + ` FROM clazz ORDER BY name`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list classes")
	}
	defer rows.Close()

	var clazzs []*domain.Clazz
	for rows.Next() {
		clazz, err := scanClazz(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan class")
		}
		clazzs = append(clazzs, clazz)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate classes")
	}

	return clazzs, nil
}

// rowScanner covers *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanClazz scans a full class row
func scanClazz(row rowScanner) (*domain.Clazz, error) {
	var clazz domain.Clazz
	var beginDate, endDate sql.NullTime
	var masterID sql.NullInt64

	err := row.Scan(
		&clazz.ID, &clazz.Name, &clazz.Room, &beginDate, &endDate,
		&masterID, &clazz.Subject, &clazz.CreateTime, &clazz.UpdateTime,
	)
	if err != nil {
		return nil, err
	}

	if beginDate.Valid {
		clazz.BeginDate = &beginDate.Time
	}
	if endDate.Valid {
		clazz.EndDate = &endDate.Time
	}
	if masterID.Valid {
		clazz.MasterID = &masterID.Int64
	}
	return &clazz, nil
}
