package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ordersight/contracts-extractor/internal/contract"
)

// WriteCSV writes the shared header row followed by one row per record.
// Absent fields render as empty cells; dates render as YYYY-MM-DD.
func WriteCSV(w io.Writer, records []*contract.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(contract.FieldOrder); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			return fmt.Errorf("write row for %s: %w", rec.PDFFilename, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes records to a UTF-8 CSV file at path, replacing any
// existing file.
func WriteCSVFile(path string, records []*contract.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
