// Package repository provides operate-log persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"

	"github.com/tlias/tlias/internal/audit/domain"
	"github.com/tlias/tlias/internal/database"
	apperrors "github.com/tlias/tlias/internal/errors"
)

// PostgreSQLOperateLogRepository implements operate-log persistence for PostgreSQL.
// Uses transaction support via database.GetTx().
type PostgreSQLOperateLogRepository struct {
	db *sql.DB
}

// NewPostgreSQLOperateLogRepository creates a new PostgreSQL operate-log repository.
func NewPostgreSQLOperateLogRepository(db *sql.DB) *PostgreSQLOperateLogRepository {
	return &PostgreSQLOperateLogRepository{db: db}
}

// Create inserts a new operate-log record. A nil OperateEmpID is stored as
// database NULL (system-internal calls carry no identity).
func (p *PostgreSQLOperateLogRepository) Create(ctx context.Context, operateLog *domain.OperateLog) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO operate_log (operate_emp_id, operate_time, class_name, method_name, method_params, return_value, cost_time)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		operateLog.OperateEmpID,
		operateLog.OperateTime,
		operateLog.ClassName,
		operateLog.MethodName,
		operateLog.MethodParams,
		operateLog.ReturnValue,
		operateLog.CostTime,
	).Scan(&operateLog.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create operate log")
	}

	return nil
}

// List retrieves operate-log records ordered by id descending (newest first)
// with pagination, plus the total count for the page envelope.
func (p *PostgreSQLOperateLogRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.OperateLog, int64, error) {
	querier := database.GetTx(ctx, p.db)

	var total int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM operate_log`).Scan(&total); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count operate logs")
	}

	query := `SELECT id, operate_emp_id, operate_time, class_name, method_name, method_params, return_value, cost_time
			  FROM operate_log
			  ORDER BY id DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list operate logs")
	}
	defer func() {
		_ = rows.Close()
	}()

	operateLogs := make([]*domain.OperateLog, 0)
	for rows.Next() {
		var operateLog domain.OperateLog
		var empID sql.NullInt64

		err := rows.Scan(
			&operateLog.ID,
			&empID,
			&operateLog.OperateTime,
			&operateLog.ClassName,
			&operateLog.MethodName,
			&operateLog.MethodParams,
			&operateLog.ReturnValue,
			&operateLog.CostTime,
		)
		if err != nil {
			return nil, 0, apperrors.Wrap(err, "failed to scan operate log")
		}

		if empID.Valid {
			operateLog.OperateEmpID = &empID.Int64
		}

		operateLogs = append(operateLogs, &operateLog)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to iterate operate logs")
	}

	return operateLogs, total, nil
}
