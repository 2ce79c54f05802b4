package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/regtech-tools/y9c-dashboard/internal/models"
)

// WriteCSV serializes the filtered view exactly as displayed: a header row
// in models.FilingColumns order, then one row per filing.
func WriteCSV(w io.Writer, rows []models.Filing) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(models.FilingColumns); err != nil {
		return fmt.Errorf("CSV write error: %w", err)
	}

	for _, fl := range rows {
		record := []string{
			fl.RSSDID,
			fl.InstitutionName,
			fl.ReportPeriod,
			fl.MDRMCode,
			formatFloat(fl.Value),
			formatFloat(fl.TotalAssets),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("CSV write error: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
