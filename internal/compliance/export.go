package compliance

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/evcomply/compliance-checker-api/internal/models"
)

// ExportRequirementsXLSX renders generated requirements as an XLSX
// workbook and returns its bytes.
func (s *Service) ExportRequirementsXLSX(reqs []models.Requirement) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Requirements"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"Test Case", "Requirement ID", "Requirement Description", "Required Equipment"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, req := range reqs {
		values := []string{req.TestCase, req.RequirementID, req.Description, req.Equipment}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", rowIdx+2, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
