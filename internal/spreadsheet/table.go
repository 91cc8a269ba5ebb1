package spreadsheet

import (
	"fmt"
	"strings"
)

// Table is a header row plus records, with columns addressed by normalised header name
// ("Avg HR", "avg hr", "avg_hr" and "AvgHR" are the same column).
type Table struct {
	Header  []string
	Records [][]string
	index   map[string]int
}

// MakeTable builds a Table from rows whose first row is the header. Every required column
// must be present exactly once. Other repeated columns resolve to their first occurrence.
func MakeTable(rows [][]string, required ...string) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	// .. build index
	index := map[string]int{}
	duplicates := map[string]bool{}
	header := make([]string, len(rows[0]))
	for i, v := range rows[0] {
		header[i] = clean(v)

		k := normalise(v)
		if k == "" {
			continue
		}

		if _, ok := index[k]; ok {
			duplicates[k] = true
			continue
		}

		index[k] = i
	}

	if len(index) == 0 {
		return nil, fmt.Errorf("%w: missing/invalid header row", ErrMalformedRow)
	}

	for _, column := range required {
		k := normalise(column)
		if _, ok := index[k]; !ok {
			return nil, fmt.Errorf("%w: missing '%s' column", ErrMalformedRow, column)
		}

		if duplicates[k] {
			return nil, fmt.Errorf("%w: duplicate '%s' column", ErrMalformedRow, column)
		}
	}

	return &Table{
		Header:  header,
		Records: rows[1:],
		index:   index,
	}, nil
}

// Has reports whether the table has the named column.
func (t *Table) Has(column string) bool {
	_, ok := t.index[normalise(column)]
	return ok
}

// Get returns the named cell of a record. Sheets omits trailing empty cells, so a record
// shorter than the header yields "", false for the missing columns.
func (t *Table) Get(record []string, column string) (string, bool) {
	ix, ok := t.index[normalise(column)]
	if !ok || ix >= len(record) {
		return "", false
	}

	return record[ix], true
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func normalise(v string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "_", "").Replace(strings.TrimSpace(v)))
}
