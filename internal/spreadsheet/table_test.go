package spreadsheet

import (
	"errors"
	"reflect"
	"testing"
)

func TestMakeTable(t *testing.T) {
	data := [][]string{
		{"Title", "Rating", "Comment", "IMDB Link", "Poster Link"},
		{"Movie A", "8", "Great", "imdb.com/a", "poster.png"},
		{"Movie B", "6"},
	}

	table, err := MakeTable(data, "title", "rating")
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	if table == nil {
		t.Fatalf("MakeTable returned %v", table)
	}

	expected := []string{"Title", "Rating", "Comment", "IMDB Link", "Poster Link"}
	if !reflect.DeepEqual(table.Header, expected) {
		t.Errorf("Incorrect header\n   expected: %v\n   got:      %v\n", expected, table.Header)
	}

	if len(table.Records) != 2 {
		t.Fatalf("Incorrect record count - expected:%v, got:%v", 2, len(table.Records))
	}

	if v, ok := table.Get(table.Records[0], "imdb_link"); !ok || v != "imdb.com/a" {
		t.Errorf("Incorrect 'imdb_link' - expected:%v, got:%v (%v)", "imdb.com/a", v, ok)
	}

	if v, ok := table.Get(table.Records[1], "poster link"); ok || v != "" {
		t.Errorf("Expected missing 'poster link' for short record, got:%q (%v)", v, ok)
	}
}

func TestMakeTableWithOutOfOrderColumns(t *testing.T) {
	data := [][]string{
		{"Poster Link", "Comment", "Title", "Rating", "IMDB Link"},
		{"poster.png", "Great", "Movie A", "8", "imdb.com/a"},
	}

	table, err := MakeTable(data, "Title", "Rating", "Comment", "IMDB Link", "Poster Link")
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	for column, expected := range map[string]string{
		"title":       "Movie A",
		"rating":      "8",
		"comment":     "Great",
		"imdblink":    "imdb.com/a",
		"poster_link": "poster.png",
	} {
		if v, ok := table.Get(table.Records[0], column); !ok || v != expected {
			t.Errorf("Incorrect '%v' - expected:%v, got:%v", column, expected, v)
		}
	}
}

func TestMakeTableWithEmptySheet(t *testing.T) {
	_, err := MakeTable([][]string{})
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Expected ErrNoData for empty sheet, got %v", err)
	}
}

func TestMakeTableWithoutHeaders(t *testing.T) {
	data := [][]string{
		{},
	}

	_, err := MakeTable(data)
	if !errors.Is(err, ErrMalformedRow) {
		t.Fatalf("Expected ErrMalformedRow for missing headers, got %v", err)
	}
}

func TestMakeTableWithMissingColumn(t *testing.T) {
	data := [][]string{
		{"Title", "Rating X"},
	}

	_, err := MakeTable(data, "title", "rating")
	if !errors.Is(err, ErrMalformedRow) {
		t.Fatalf("Expected ErrMalformedRow for missing 'rating' column, got %v", err)
	}
}

func TestMakeTableWithDuplicateColumn(t *testing.T) {
	data := [][]string{
		{"Title", "Rating", "title"},
	}

	if _, err := MakeTable(data, "title"); !errors.Is(err, ErrMalformedRow) {
		t.Fatalf("Expected ErrMalformedRow for duplicate 'title' column, got %v", err)
	}
}

func TestMakeTableWithDuplicateUnusedColumn(t *testing.T) {
	data := [][]string{
		{"Title", "Notes", "Rating", "Notes"},
		{"Movie A", "first", "8", "second"},
	}

	table, err := MakeTable(data, "title", "rating")
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	if v, ok := table.Get(table.Records[0], "notes"); !ok || v != "first" {
		t.Errorf("Incorrect 'notes' - expected:%v, got:%v (%v)", "first", v, ok)
	}
}

func TestMakeTableIgnoresBlankHeaders(t *testing.T) {
	data := [][]string{
		{"Date", "", "Distance", " "},
		{"2024-01-01", "x", "5", "y"},
	}

	table, err := MakeTable(data, "date", "distance")
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeTable (%v)", err)
	}

	if table.Has("") {
		t.Errorf("Expected blank header to be unindexed")
	}
}
