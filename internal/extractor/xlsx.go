package extractor

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/evcomply/compliance-checker-api/internal/models"
)

// ExtractXLSX reads the first sheet of a workbook into row maps. The
// first row supplies the column names; every later row becomes one
// column→value map. Rows shorter than the header are padded with empty
// strings so every map carries the full key set.
func ExtractXLSX(data []byte) ([]models.SpreadsheetRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook contains no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	records := make([]models.SpreadsheetRow, 0, len(rows)-1)

	for _, row := range rows[1:] {
		record := make(models.SpreadsheetRow, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return records, nil
}
