package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fade-color/ydata-profiling-zh/domain/dataset"
	"github.com/fade-color/ydata-profiling-zh/internal/errors"
)

// DataReader reads CSV and XLSX files into a dataset table
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	coercer  *TypeCoercer
}

// NewDataReader creates a reader for the given file, picking the format from
// the extension
func NewDataReader(filePath string) *DataReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		coercer:  NewTypeCoercer(),
	}
}

// Read loads the file into a typed table
func (r *DataReader) Read() (*dataset.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.ReadFailed(r.filePath, fmt.Errorf("file not found"))
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readXLSX()
	default:
		return nil, errors.InvalidInput("unsupported file type: " + r.fileType)
	}
}

func (r *DataReader) readCSV() (*dataset.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.ReadFailed(r.filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.ReadFailed(r.filePath, err)
	}

	return r.buildTable(rows)
}

func (r *DataReader) readXLSX() (*dataset.Table, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.ReadFailed(r.filePath, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.InvalidInput("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.ReadFailed(r.filePath, err)
	}

	return r.buildTable(rows)
}

// buildTable converts raw string rows (header first) into typed columns
func (r *DataReader) buildTable(rows [][]string) (*dataset.Table, error) {
	if len(rows) == 0 {
		return nil, errors.InvalidInput("file has no header row")
	}

	header := rows[0]
	columns := make([]dataset.Column, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("column_%d", i)
		}
		columns[i] = dataset.Column{
			Name:   name,
			Values: make([]dataset.Value, 0, len(rows)-1),
		}
	}

	for _, row := range rows[1:] {
		for i := range columns {
			if i < len(row) {
				columns[i].Values = append(columns[i].Values, r.coercer.CoerceValue(row[i]))
			} else {
				// Ragged row: trailing cells are missing
				columns[i].Values = append(columns[i].Values, dataset.NewMissingValue())
			}
		}
	}

	return dataset.NewTable(columns), nil
}
