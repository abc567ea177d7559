package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ordersight/contracts-extractor/internal/contract"
)

func TestBuildXLSX(t *testing.T) {
	rec := sampleRecord()

	b, err := BuildXLSX([]*contract.Record{rec})
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	// Same header set as the CSV output, in the same column order.
	v, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "pdf_filename", v)

	v, err = f.GetCellValue(sheetName, "E1")
	require.NoError(t, err)
	assert.Equal(t, "subscription_term_start_date", v)

	v, err = f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "acme.pdf", v)

	v, err = f.GetCellValue(sheetName, "E2")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", v)
}

func TestBuildXLSXEmptyBatch(t *testing.T) {
	b, err := BuildXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, contract.FieldOrder, rows[0])
}
