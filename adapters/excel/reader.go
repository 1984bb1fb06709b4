// Package excel reads Excel and CSV files into raw chart records.
package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"chartcore/domain/record"
	"chartcore/ports"
)

// DefaultSheet is the sheet read when a query names none.
const DefaultSheet = "Sheet1"

// DataReader handles reading Excel and CSV files.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader that handles both Excel and CSV files
// based on the file extension.
func NewDataReader(filePath string) *DataReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// NewRecordSource exposes a file as a chart record source. The query
// string selects the sheet for xlsx files and is ignored for CSV.
func NewRecordSource(filePath string) ports.RecordSource {
	return NewDataReader(filePath)
}

// Query implements ports.RecordSource.
func (r *DataReader) Query(_ context.Context, query string) ([]record.Raw, error) {
	sheet := strings.TrimSpace(query)
	if sheet == "" {
		sheet = DefaultSheet
	}
	return r.Read(sheet)
}

// Read loads the named sheet (xlsx) or the whole file (csv) as records.
func (r *DataReader) Read(sheet string) ([]record.Raw, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	default:
		return r.readExcel(sheet)
	}
}

func (r *DataReader) readExcel(sheet string) ([]record.Raw, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rowsToRecords(rows)
}

func (r *DataReader) readCSV() ([]record.Raw, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rowsToRecords(rows)
}

// ReadFrom parses an already-open xlsx stream, used by upload handlers.
func ReadFrom(reader io.Reader, sheet string) ([]record.Raw, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel stream: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = DefaultSheet
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rowsToRecords(rows)
}

// rowsToRecords converts header + data rows into open records, coercing
// numeric-looking cells so downstream aggregation sees numbers.
func rowsToRecords(rows [][]string) ([]record.Raw, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("file must have at least a header row and one data row")
	}

	headers := rows[0]
	records := make([]record.Raw, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(record.Raw, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			var cell string
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			rec[header] = coerceCell(cell)
		}
		records = append(records, rec)
	}
	return records, nil
}

func coerceCell(cell string) any {
	if cell == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	return cell
}
