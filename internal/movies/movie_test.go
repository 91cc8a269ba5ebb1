package movies

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/anselboero/cloud-functions/internal/spreadsheet"
)

func TestFromRows(t *testing.T) {
	expected := Movie{
		Title:      "Movie A",
		Rating:     "8",
		Comment:    "Great",
		IMDBLink:   "imdb.com/a",
		PosterLink: "poster.png",
	}

	movie, err := FromRows([][]string{{"Movie A", "8", "Great", "imdb.com/a", "poster.png"}})
	if err != nil {
		t.Fatalf("Unexpected error returned from FromRows (%v)", err)
	}

	if !reflect.DeepEqual(*movie, expected) {
		t.Errorf("Incorrect movie\n   expected: %+v\n   got:      %+v\n", expected, *movie)
	}
}

func TestMovieJSON(t *testing.T) {
	expected := `{"title":"Movie A","rating":"8","comment":"Great","imdb_link":"imdb.com/a","poster_link":"poster.png"}`

	movie, err := FromRows([][]string{{"Movie A", "8", "Great", "imdb.com/a", "poster.png"}})
	if err != nil {
		t.Fatalf("Unexpected error returned from FromRows (%v)", err)
	}

	b, err := json.Marshal(movie)
	if err != nil {
		t.Fatalf("Unexpected error marshalling movie (%v)", err)
	}

	if string(b) != expected {
		t.Errorf("Incorrect JSON\n   expected: %s\n   got:      %s\n", expected, b)
	}
}

func TestFromRowsWithShortRow(t *testing.T) {
	_, err := FromRows([][]string{{"Movie A", "8", "Great"}})
	if !errors.Is(err, spreadsheet.ErrMalformedRow) {
		t.Fatalf("Expected ErrMalformedRow for short row, got %v", err)
	}
}

func TestFromRowsWithNoRows(t *testing.T) {
	_, err := FromRows([][]string{})
	if !errors.Is(err, spreadsheet.ErrNoData) {
		t.Fatalf("Expected ErrNoData for empty range, got %v", err)
	}
}

func TestFromTable(t *testing.T) {
	expected := Movie{
		Title:      "Movie A",
		Rating:     "8",
		Comment:    "",
		IMDBLink:   "imdb.com/a",
		PosterLink: "poster.png",
	}

	rows := [][]string{
		{"Poster Link", "Title", "IMDB Link", "Rating", "Comment"},
		{"poster.png", "Movie A", "imdb.com/a", "8"},
	}

	movie, err := FromTable(rows)
	if err != nil {
		t.Fatalf("Unexpected error returned from FromTable (%v)", err)
	}

	if !reflect.DeepEqual(*movie, expected) {
		t.Errorf("Incorrect movie\n   expected: %+v\n   got:      %+v\n", expected, *movie)
	}
}

func TestFromTableWithMissingColumn(t *testing.T) {
	rows := [][]string{
		{"Title", "Rating", "Comment", "IMDB Link"},
		{"Movie A", "8", "Great", "imdb.com/a"},
	}

	_, err := FromTable(rows)
	if !errors.Is(err, spreadsheet.ErrMalformedRow) {
		t.Fatalf("Expected ErrMalformedRow for missing 'poster link' column, got %v", err)
	}
}

func TestFromTableWithHeaderOnly(t *testing.T) {
	rows := [][]string{
		{"Title", "Rating", "Comment", "IMDB Link", "Poster Link"},
	}

	_, err := FromTable(rows)
	if !errors.Is(err, spreadsheet.ErrNoData) {
		t.Fatalf("Expected ErrNoData for header-only range, got %v", err)
	}
}
