package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	models "github.com/regtech-tools/y9c-dashboard/internal/models"
)

type PostgresMDRMRepository struct {
	db *sql.DB
}

func NewPostgresMDRMRepository(db *sql.DB) *PostgresMDRMRepository {
	return &PostgresMDRMRepository{db: db}
}

// Only the open-ended dictionary rows are current; superseded entries keep
// their historical end_date.
const currentEndDate = "9999-12-31"

func (r *PostgresMDRMRepository) GetAll() ([]models.MDRMField, error) {
	query := `SELECT mdrm_code, item_name, description, reporting_form FROM mdrm_mapping WHERE end_date = $1 ORDER BY mdrm_code`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, currentEndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer rows.Close()

	var fields []models.MDRMField
	for rows.Next() {
		var f models.MDRMField
		if err := rows.Scan(&f.Code, &f.ItemName, &f.Description, &f.ReportingForm); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	return fields, nil
}

func (r *PostgresMDRMRepository) GetByCode(code string) (models.MDRMField, error) {
	query := `SELECT mdrm_code, item_name, description, reporting_form FROM mdrm_mapping WHERE mdrm_code = $1 AND end_date = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var f models.MDRMField
	err := r.db.QueryRowContext(ctx, query, code, currentEndDate).Scan(&f.Code, &f.ItemName, &f.Description, &f.ReportingForm)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MDRMField{}, ErrFieldNotFound
	}
	if err != nil {
		return models.MDRMField{}, fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	return f, nil
}
