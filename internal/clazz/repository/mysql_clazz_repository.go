package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/tlias/tlias/internal/clazz/domain"
	"github.com/tlias/tlias/internal/database"

	apperrors "github.com/tlias/tlias/internal/errors"
)

// MySQLClazzRepository handles class persistence for MySQL
type MySQLClazzRepository struct {
	db *sql.DB
}

// NewMySQLClazzRepository creates a new MySQLClazzRepository
func NewMySQLClazzRepository(db *sql.DB) *MySQLClazzRepository {
	return &MySQLClazzRepository{
		db: db,
	}
}

// Create inserts a new class and sets the generated ID
func (r *MySQLClazzRepository) Create(ctx context.Context, clazz *domain.Clazz) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO clazz (name, room, begin_date, end_date, master_id, subject, create_time, update_time)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		clazz.Name, clazz.Room, clazz.BeginDate, clazz.EndDate, clazz.MasterID,
		clazz.Subject, clazz.CreateTime, clazz.UpdateTime,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create class")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get last insert id")
	}
	clazz.ID = id
	return nil
}

// Update modifies an existing class
func (r *MySQLClazzRepository) Update(ctx context.Context, clazz *domain.Clazz) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE clazz
			  SET name = ?, room = ?, begin_date = ?, end_date = ?,
			      master_id = ?, subject = ?, update_time = ?
			  WHERE id = ?`

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
func (r *MySQLClazzRepository) DeleteByID(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM clazz WHERE id = ?`
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
func (r *MySQLClazzRepository) GetByID(ctx context.Context, id int64) (*domain.Clazz, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + clazzColumns + ` FROM clazz WHERE id = ?`

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
func (r *MySQLClazzRepository) List(
	ctx context.Context,
	filter domain.ClazzFilter,
	offset, limit int,
) ([]*domain.Clazz, int64, error) {
	querier := database.GetTx(ctx, r.db)

	var conditions []string
	var args []any

	if filter.Name != "" {
		conditions = append(conditions, "name LIKE ?")
		args = append(args, "%"+filter.Name+"%")
	}
	if filter.Begin != nil {
		conditions = append(conditions, "begin_date >= ?")
		args = append(args, *filter.Begin)
	}
	if filter.End != nil {
		conditions = append(conditions, "end_date <= ?")
		args = append(args, *filter.End)
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

	query := `SELECT ` + clazzColumns + ` FROM clazz` + where + ` ORDER BY update_time DESC LIMIT ? OFFSET ?`
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
func (r *MySQLClazzRepository) ListAll(ctx context.Context) ([]*domain.Clazz, error) {
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
