package export

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ordersight/contracts-extractor/internal/contract"
)

const sheetName = "Contracts"

// BuildXLSX returns an XLSX workbook with the same columns as the CSV output:
// the shared header row and one row per record.
func BuildXLSX(records []*contract.Record) ([]byte, error) {
	f := excelize.NewFile()

	if index, _ := f.GetSheetIndex(sheetName); index == -1 {
		if _, err := f.NewSheet(sheetName); err != nil {
			return nil, err
		}
	}
	// Drop the default sheet so the workbook only carries ours.
	_ = f.DeleteSheet("Sheet1")
	activeIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(activeIndex)

	for i, h := range contract.FieldOrder {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, h)
	}

	row := 2
	for _, rec := range records {
		for col, v := range rec.Row() {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, v)
		}
		row++
	}

	// Widen the columns that carry free text.
	_ = f.SetColWidth(sheetName, "A", "B", 24) // filename, order form number
	_ = f.SetColWidth(sheetName, "C", "D", 32) // customer name, address
	_ = f.SetColWidth(sheetName, "K", "L", 32) // billing address, email

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteXLSXFile writes records as an XLSX workbook at path.
func WriteXLSXFile(path string, records []*contract.Record) error {
	b, err := BuildXLSX(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
