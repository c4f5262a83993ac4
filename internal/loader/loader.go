// Package loader decodes CSV and XLSX files into a raw header row plus data
// rows for the dataset package. It knows nothing about views or padding;
// malformed input surfaces as a *DecodeError wrapping the cause.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DecodeError reports a file that could not be decoded. The previously
// loaded dataset, if any, stays in place; the message is shown to the user.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Read decodes the file at path by extension. It returns the first row as
// the header and the remainder as data rows; an empty but well-formed file
// yields nil slices and no error, leaving the emptiness decision to
// dataset.Load.
func Read(path string) (header []string, rows [][]string, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, nil, &DecodeError{Path: path, Err: fmt.Errorf("unsupported file type %q", filepath.Ext(path))}
	}
}

func readCSV(path string) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, &DecodeError{Path: path, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are the dataset's problem
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, &DecodeError{Path: path, Err: err}
	}

	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}

func readXLSX(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	// First sheet only, like the original viewer.
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, nil, &DecodeError{Path: path, Err: fmt.Errorf("workbook has no sheets")}
	}

	records, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, &DecodeError{Path: path, Err: err}
	}

	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}
