package spreadsheet

import (
	"reflect"
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestCells(t *testing.T) {
	expected := [][]string{
		{"a", "1"},
		{"", "x"},
		{"b"},
		{"c", "2.5"},
	}

	data := sheets.ValueRange{
		Values: [][]any{
			[]any{"a", "1"},
			[]any{"", "x"},
			[]any{"b"},
			[]any{"c", 2.5},
		},
	}

	if cells := Cells(&data); !reflect.DeepEqual(cells, expected) {
		t.Errorf("Incorrect cells\n   expected: %v\n   got:      %v\n", expected, cells)
	}
}

func TestCellsWithEmptyRange(t *testing.T) {
	if cells := Cells(&sheets.ValueRange{}); len(cells) != 0 {
		t.Errorf("Expected no rows, got %v", cells)
	}

	if cells := Cells(nil); len(cells) != 0 {
		t.Errorf("Expected no rows, got %v", cells)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{" 1G_CqV95lI7r-XtgpO5UOzsB_h77G4JVV9kThdzfsujk ", "1G_CqV95lI7r-XtgpO5UOzsB_h77G4JVV9kThdzfsujk"},
	}

	for _, test := range tests {
		id, err := ParseID(test.value)
		if err != nil {
			t.Errorf("Unexpected error parsing '%v' (%v)", test.value, err)
		} else if id != test.expected {
			t.Errorf("Incorrect ID for '%v' - expected:%v, got:%v", test.value, test.expected, id)
		}
	}
}

func TestParseIDWithInvalidValue(t *testing.T) {
	for _, v := range []string{"", "short", "https://example.com/d/abc", "not a spreadsheet id"} {
		if _, err := ParseID(v); err == nil {
			t.Errorf("Expected error parsing '%v'", v)
		}
	}
}

func TestSheetName(t *testing.T) {
	tests := map[string]string{
		"API!A:B":                "API",
		"LastMovieWatched!A2:E2": "LastMovieWatched",
		"'Net Worth'!A1:B":       "Net Worth",
	}

	for area, expected := range tests {
		name, err := SheetName(area)
		if err != nil {
			t.Errorf("Unexpected error for range '%v' (%v)", area, err)
		} else if name != expected {
			t.Errorf("Incorrect sheet name for '%v' - expected:%v, got:%v", area, expected, name)
		}
	}

	if _, err := SheetName("A1:B2"); err == nil {
		t.Errorf("Expected error for range without sheet name")
	}
}
