package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"taxara/internal/domain"
	"taxara/internal/engine"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row for the expense review export.
var columns = []string{
	"Transaction ID",
	"Occurred At",
	"Category",
	"Description",
	"Amount",
	"VAT Evidence",
	"Capital Asset",
	"Asset Class",
	"Deductible",
	"Status",
	"Issues",
}

// Writer wraps csv.Writer for exporting expense review rows as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRow writes one validated expense as a CSV row.
func (w *Writer) WriteRow(record *domain.TransactionRecord, result *engine.ExpenseResult) error {
	return w.csv.Write(expenseToRow(record, result))
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func expenseToRow(record *domain.TransactionRecord, result *engine.ExpenseResult) []string {
	row := make([]string, len(columns))
	row[0] = record.ID.String()
	row[1] = record.OccurredAt.Format(time.RFC3339)
	row[2] = record.CategoryName
	row[3] = record.Description
	row[4] = strconv.FormatFloat(record.Amount, 'f', 2, 64)
	row[5] = boolCell(record.HasVatEvidence)
	row[6] = boolCell(record.IsCapitalAsset)
	row[7] = string(record.AssetClass)
	row[8] = boolCell(result.IsDeductible)
	row[9] = string(result.Status)
	row[10] = strings.Join(result.Issues, "; ")
	return row
}

func boolCell(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
