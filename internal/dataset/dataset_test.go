package dataset

import (
	"errors"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		rows     [][]string
		wantErr  error
		wantRows int
		wantCols int
	}{
		{
			name:     "Header and rows",
			header:   []string{"Name", "Age"},
			rows:     [][]string{{"Ann", "30"}, {"Bo", "25"}},
			wantRows: 2,
			wantCols: 2,
		},
		{
			name:     "Header only",
			header:   []string{"Name", "Age"},
			rows:     nil,
			wantRows: 0,
			wantCols: 2,
		},
		{
			name:    "Nothing at all",
			header:  nil,
			rows:    nil,
			wantErr: ErrEmptySource,
		},
		{
			name:    "Only empty rows",
			header:  []string{},
			rows:    [][]string{{}, {}},
			wantErr: ErrEmptySource,
		},
		{
			name:     "Short row padded",
			header:   []string{"A", "B", "C"},
			rows:     [][]string{{"X"}},
			wantRows: 1,
			wantCols: 3,
		},
		{
			name:     "Long row grows column count",
			header:   []string{"A", "B"},
			rows:     [][]string{{"1", "2", "3", "4"}},
			wantRows: 1,
			wantCols: 4,
		},
		{
			name:     "Headerless rows still load",
			header:   nil,
			rows:     [][]string{{"1", "2"}},
			wantRows: 1,
			wantCols: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Load(tt.header, tt.rows)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v; want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			if d.RowCount() != tt.wantRows {
				t.Errorf("RowCount() = %d; want %d", d.RowCount(), tt.wantRows)
			}
			if d.ColumnCount() != tt.wantCols {
				t.Errorf("ColumnCount() = %d; want %d", d.ColumnCount(), tt.wantCols)
			}
			if len(d.Headers()) != tt.wantCols {
				t.Errorf("len(Headers()) = %d; want %d", len(d.Headers()), tt.wantCols)
			}
			for i := 0; i < d.RowCount(); i++ {
				row, err := d.Row(i)
				if err != nil {
					t.Fatalf("Row(%d) error: %v", i, err)
				}
				if len(row) != tt.wantCols {
					t.Errorf("len(Row(%d)) = %d; want %d", i, len(row), tt.wantCols)
				}
			}
		})
	}
}

func TestLoadPadsShortRow(t *testing.T) {
	d, err := Load([]string{"A", "B", "C"}, [][]string{{"X"}})
	if err != nil {
		t.Fatal(err)
	}
	row, _ := d.Row(0)
	want := []string{"X", "", ""}
	for i, cell := range want {
		if row[i] != cell {
			t.Errorf("Row(0)[%d] = %q; want %q", i, row[i], cell)
		}
	}
}

func TestCellAt(t *testing.T) {
	d, err := Load([]string{"Name", "Age"}, [][]string{{"Ann", "30"}, {"Bo", "25"}})
	if err != nil {
		t.Fatal(err)
	}

	got, err := d.CellAt(1, 0)
	if err != nil {
		t.Fatalf("CellAt(1,0) error: %v", err)
	}
	if got != "Bo" {
		t.Errorf("CellAt(1,0) = %q; want %q", got, "Bo")
	}

	outOfRange := [][2]int{{2, 0}, {-1, 0}, {0, 2}, {0, -1}}
	for _, c := range outOfRange {
		if _, err := d.CellAt(c[0], c[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("CellAt(%d,%d) error = %v; want ErrIndexOutOfRange", c[0], c[1], err)
		}
	}
}

func TestLoadDoesNotAliasInput(t *testing.T) {
	header := []string{"A"}
	rows := [][]string{{"1"}}
	d, err := Load(header, rows)
	if err != nil {
		t.Fatal(err)
	}

	header[0] = "mutated"
	rows[0][0] = "mutated"

	if d.Headers()[0] != "A" {
		t.Errorf("Headers()[0] = %q; want %q", d.Headers()[0], "A")
	}
	if cell, _ := d.CellAt(0, 0); cell != "1" {
		t.Errorf("CellAt(0,0) = %q; want %q", cell, "1")
	}
}
