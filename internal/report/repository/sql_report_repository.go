// Package repository provides the aggregate count queries behind the report
// endpoints. The queries carry no placeholders, so a single implementation
// serves both MySQL and PostgreSQL.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tlias/tlias/internal/database"
	"github.com/tlias/tlias/internal/report/domain"

	apperrors "github.com/tlias/tlias/internal/errors"
)

// jobNames maps employee job codes to display names.
var jobNames = map[int]string{
	1: "Class Teacher",
	2: "Lecturer",
	3: "Student Affairs Head",
	4: "Teaching Research Head",
	5: "Consultant",
}

// genderNames maps gender codes to display names.
var genderNames = map[int]string{
	1: "Male",
	2: "Female",
}

// degreeNames maps student degree codes to display names.
var degreeNames = map[int]string{
	1: "Junior High",
	2: "Senior High",
	3: "Associate",
	4: "Bachelor",
	5: "Master",
	6: "Doctorate",
}

// SQLReportRepository handles the aggregate queries for reports
type SQLReportRepository struct {
	db *sql.DB
}

// NewSQLReportRepository creates a new SQLReportRepository
func NewSQLReportRepository(db *sql.DB) *SQLReportRepository {
	return &SQLReportRepository{
		db: db,
	}
}

// EmpJobCounts counts employees grouped by job code
func (r *SQLReportRepository) EmpJobCounts(ctx context.Context) ([]domain.CountItem, error) {
	query := `SELECT job, COUNT(*) FROM emp GROUP BY job ORDER BY job`
	return r.countByCode(ctx, query, jobNames, "failed to count employees by job")
}

// EmpGenderCounts counts employees grouped by gender
func (r *SQLReportRepository) EmpGenderCounts(ctx context.Context) ([]domain.CountItem, error) {
	query := `SELECT gender, COUNT(*) FROM emp GROUP BY gender ORDER BY gender`
	return r.countByCode(ctx, query, genderNames, "failed to count employees by gender")
}

// StudentDegreeCounts counts students grouped by degree level
func (r *SQLReportRepository) StudentDegreeCounts(ctx context.Context) ([]domain.CountItem, error) {
	query := `SELECT degree, COUNT(*) FROM student GROUP BY degree ORDER BY degree`
	return r.countByCode(ctx, query, degreeNames, "failed to count students by degree")
}

// StudentCountsByClazz counts students grouped by class name. Classes without
// students still appear with a zero count.
func (r *SQLReportRepository) StudentCountsByClazz(ctx context.Context) ([]domain.CountItem, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT c.name, COUNT(s.id)
			  FROM clazz c
			  LEFT JOIN student s ON s.clazz_id = c.id
			  GROUP BY c.id, c.name
			  ORDER BY c.name`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to count students by class")
	}
	defer rows.Close()

	var items []domain.CountItem
	for rows.Next() {
		var item domain.CountItem
		if err := rows.Scan(&item.Name, &item.Value); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan count row")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate count rows")
	}

	return items, nil
}

// countByCode runs a code/count aggregate and attaches display names
func (r *SQLReportRepository) countByCode(
	ctx context.Context,
	query string,
	names map[int]string,
	failMessage string,
) ([]domain.CountItem, error) {
	querier := database.GetTx(ctx, r.db)

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, failMessage)
	}
	defer rows.Close()

	var items []domain.CountItem
	for rows.Next() {
		var code int
		var count int64
		if err := rows.Scan(&code, &count); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan count row")
		}
		name, ok := names[code]
		if !ok {
			name = fmt.Sprintf("Other (%d)", code)
		}
		items = append(items, domain.CountItem{Name: name, Value: count})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate count rows")
	}

	return items, nil
}
