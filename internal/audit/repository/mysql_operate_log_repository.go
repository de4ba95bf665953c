package repository

import (
	"context"
	"database/sql"

	"github.com/tlias/tlias/internal/audit/domain"
	"github.com/tlias/tlias/internal/database"
	apperrors "github.com/tlias/tlias/internal/errors"
)

// MySQLOperateLogRepository implements operate-log persistence for MySQL.
// Uses transaction support via database.GetTx().
type MySQLOperateLogRepository struct {
	db *sql.DB
}

// NewMySQLOperateLogRepository creates a new MySQL operate-log repository.
func NewMySQLOperateLogRepository(db *sql.DB) *MySQLOperateLogRepository {
	return &MySQLOperateLogRepository{db: db}
}

// Create inserts a new operate-log record. A nil OperateEmpID is stored as
// database NULL (system-internal calls carry no identity).
func (m *MySQLOperateLogRepository) Create(ctx context.Context, operateLog *domain.OperateLog) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO operate_log (operate_emp_id, operate_time, class_name, method_name, method_params, return_value, cost_time)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		operateLog.OperateEmpID,
		operateLog.OperateTime,
		operateLog.ClassName,
		operateLog.MethodName,
		operateLog.MethodParams,
		operateLog.ReturnValue,
		operateLog.CostTime,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create operate log")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get operate log id")
	}
	operateLog.ID = id

	return nil
}

// List retrieves operate-log records ordered by id descending (newest first)
// with pagination, plus the total count for the page envelope.
func (m *MySQLOperateLogRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*domain.OperateLog, int64, error) {
	querier := database.GetTx(ctx, m.db)

	var total int64
	if err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM operate_log`).Scan(&total); err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count operate logs")
	}

	query := `SELECT id, operate_emp_id, operate_time, class_name, method_name, method_params, return_value, cost_time
			  FROM operate_log
			  ORDER BY id DESC
			  LIMIT ? OFFSET ?`

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
