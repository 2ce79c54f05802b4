package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	models "github.com/regtech-tools/y9c-dashboard/internal/models"
)

type PostgresFilingRepository struct {
	db *sql.DB
}

func NewPostgresFilingRepository(db *sql.DB) *PostgresFilingRepository {
	return &PostgresFilingRepository{db: db}
}

func (r *PostgresFilingRepository) Filter(f FilingFilter) ([]models.Filing, int, error) {
	conditions, args, argIdx := filingConditions(f)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM y9c_filings WHERE 1=1" + conditions
	row := r.db.QueryRowContext(ctx, countQuery, args...)
	if err := row.Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}

	query := `SELECT rssd_id, institution_name, report_period, mdrm_code, value, total_assets FROM y9c_filings WHERE 1=1`
	query += conditions
	query += " ORDER BY report_period, rssd_id, mdrm_code"

	if f.Limit != nil && *f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *f.Limit)
		argIdx++
	}
	if f.Offset != nil && *f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer rows.Close()

	var filings []models.Filing
	for rows.Next() {
		var (
			fl     models.Filing
			period time.Time
		)
		if err := rows.Scan(&fl.RSSDID, &fl.InstitutionName, &period, &fl.MDRMCode, &fl.Value, &fl.TotalAssets); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrConnectivity, err)
		}
		fl.ReportPeriod = period.Format("2006-01-02")
		filings = append(filings, fl)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	return filings, totalCount, nil
}

func (r *PostgresFilingRepository) Periods() ([]string, error) {
	query := `SELECT DISTINCT report_period FROM y9c_filings ORDER BY report_period DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer rows.Close()

	var periods []string
	for rows.Next() {
		var period time.Time
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
		}
		periods = append(periods, period.Format("2006-01-02"))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	return periods, nil
}

// filingConditions builds the shared WHERE tail for count and select queries.
func filingConditions(f FilingFilter) (string, []any, int) {
	conditions := ""
	args := []any{}
	argIdx := 1

	if f.PeriodFrom != "" {
		conditions += fmt.Sprintf(" AND report_period >= $%d", argIdx)
		args = append(args, f.PeriodFrom)
		argIdx++
	}
	if f.PeriodTo != "" {
		conditions += fmt.Sprintf(" AND report_period <= $%d", argIdx)
		args = append(args, f.PeriodTo)
		argIdx++
	}
	if f.MinAssets != nil {
		conditions += fmt.Sprintf(" AND total_assets >= $%d", argIdx)
		args = append(args, *f.MinAssets)
		argIdx++
	}
	if len(f.MDRMCodes) > 0 {
		conditions += " AND mdrm_code IN ("
		for i, code := range f.MDRMCodes {
			if i > 0 {
				conditions += ", "
			}
			conditions += fmt.Sprintf("$%d", argIdx)
			args = append(args, code)
			argIdx++
		}
		conditions += ")"
	}

	return conditions, args, argIdx
}
