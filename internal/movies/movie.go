// Package movies maps the MyMoviesDb worksheet onto the last-movie-watched record.
package movies

import (
	"fmt"

	"github.com/anselboero/cloud-functions/internal/spreadsheet"
)

// Movie is the last movie watched. Field order is the serialised order.
type Movie struct {
	Title      string `json:"title"`
	Rating     string `json:"rating"`
	Comment    string `json:"comment"`
	IMDBLink   string `json:"imdb_link"`
	PosterLink string `json:"poster_link"`
}

// Columns lists the worksheet columns in positional order.
var Columns = []string{"title", "rating", "comment", "imdb_link", "poster_link"}

// FromRows maps the first row positionally: cell N is field N of Columns.
func FromRows(rows [][]string) (*Movie, error) {
	if len(rows) == 0 {
		return nil, spreadsheet.ErrNoData
	}

	row := rows[0]
	if len(row) < len(Columns) {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", spreadsheet.ErrMalformedRow, len(Columns), len(row))
	}

	return &Movie{
		Title:      row[0],
		Rating:     row[1],
		Comment:    row[2],
		IMDBLink:   row[3],
		PosterLink: row[4],
	}, nil
}

// FromTable maps the first record under a header row, matching columns by name.
func FromTable(rows [][]string) (*Movie, error) {
	table, err := spreadsheet.MakeTable(rows, Columns...)
	if err != nil {
		return nil, err
	}

	if len(table.Records) == 0 {
		return nil, spreadsheet.ErrNoData
	}

	record := table.Records[0]
	get := func(column string) string {
		v, _ := table.Get(record, column)
		return v
	}

	title, ok := table.Get(record, "title")
	if !ok || title == "" {
		return nil, fmt.Errorf("%w: missing title", spreadsheet.ErrMalformedRow)
	}

	return &Movie{
		Title:      title,
		Rating:     get("rating"),
		Comment:    get("comment"),
		IMDBLink:   get("imdb_link"),
		PosterLink: get("poster_link"),
	}, nil
}
