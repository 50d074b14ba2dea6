// Package export renders a session's documents as CSV or XLSX.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"smartcarbon/internal/domain"
)

// BOM is the UTF-8 byte order mark, written first for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the header row shared by CSV and XLSX exports.
var columns = []string{
	"Date",
	"Category",
	"Amount",
	"Unit",
	"Cost",
	"Emissions (kg CO2e)",
}

// Writer wraps csv.Writer for exporting documents as CSV.
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

// WriteDocuments converts documents to CSV rows and writes them.
func (w *Writer) WriteDocuments(docs []domain.ProcessedDocument) error {
	for i := range docs {
		if err := w.csv.Write(documentToRow(&docs[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// WriteCSV writes BOM, header, and rows to out.
func WriteCSV(out io.Writer, docs []domain.ProcessedDocument) error {
	if _, err := out.Write(BOM); err != nil {
		return err
	}
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	if err := w.WriteDocuments(docs); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func documentToRow(doc *domain.ProcessedDocument) []string {
	return []string{
		doc.Date.String(),
		string(doc.Type),
		formatNumber(doc.Amount),
		doc.Unit,
		formatMoney(doc.Cost),
		formatNumber(doc.Emissions),
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
