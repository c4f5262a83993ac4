package loader

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeCSVFixture(t *testing.T, records [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeXLSXFixture(t *testing.T, records [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeCSVFixture(t, [][]string{
		{"Name", "Age"},
		{"Ann", "30"},
		{"Bo", "25"},
	})

	header, rows, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !reflect.DeepEqual(header, []string{"Name", "Age"}) {
		t.Errorf("header = %v; want [Name Age]", header)
	}
	if !reflect.DeepEqual(rows, [][]string{{"Ann", "30"}, {"Bo", "25"}}) {
		t.Errorf("rows = %v", rows)
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	// Rows with differing cell counts must come through as-is, not as a
	// csv.ErrFieldCount failure.
	path := filepath.Join(t.TempDir(), "ragged.csv")
	content := "A,B,C\nX\n1,2,3,4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	header, rows, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(header) != 3 {
		t.Errorf("len(header) = %d; want 3", len(header))
	}
	if len(rows) != 2 || len(rows[0]) != 1 || len(rows[1]) != 4 {
		t.Errorf("rows = %v; want ragged [[X] [1 2 3 4]]", rows)
	}
}

func TestReadCSVEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	header, rows, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if header != nil || rows != nil {
		t.Errorf("Read() = (%v, %v); want (nil, nil)", header, rows)
	}
}

func TestReadXLSX(t *testing.T) {
	path := writeXLSXFixture(t, [][]string{
		{"Name", "Age"},
		{"Ann", "30"},
		{"Bo", "25"},
	})

	header, rows, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !reflect.DeepEqual(header, []string{"Name", "Age"}) {
		t.Errorf("header = %v; want [Name Age]", header)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d; want 2", len(rows))
	}
	if rows[1][0] != "Bo" {
		t.Errorf("rows[1][0] = %q; want %q", rows[1][0], "Bo")
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"Missing CSV", filepath.Join(t.TempDir(), "missing.csv")},
		{"Missing XLSX", filepath.Join(t.TempDir(), "missing.xlsx")},
		{"Unsupported extension", filepath.Join(t.TempDir(), "data.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Read(tt.path)
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("Read() error = %v; want *DecodeError", err)
			}
			if decodeErr.Path != tt.path {
				t.Errorf("DecodeError.Path = %q; want %q", decodeErr.Path, tt.path)
			}
		})
	}
}

func TestReadCorruptXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.xlsx")
	if err := os.WriteFile(path, []byte("this is not a zip archive"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Read(path)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Read() error = %v; want *DecodeError", err)
	}
}
