// Package spreadsheet reads cell ranges from Google Sheets and maps them onto header-indexed
// tables.
package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/anselboero/cloud-functions/internal/credentials"
)

var (
	// ErrNoData is returned when a range holds no rows.
	ErrNoData = errors.New("no data in spreadsheet/range")

	// ErrMalformedRow is returned when a row does not have the cells or columns it must have.
	ErrMalformedRow = errors.New("malformed row")
)

var (
	urlRegex   = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)
	idRegex    = regexp.MustCompile(`^[a-zA-Z0-9_-]{10,}$`)
	rangeRegex = regexp.MustCompile(`^(.+?)!.*$`)
)

// Reader fetches the cells of an A1-notation range.
type Reader interface {
	Read(ctx context.Context, spreadsheet, area string) ([][]string, error)
}

// Google is a Reader backed by the Sheets v4 API. A new service is created for every read.
type Google struct {
	Credentials string
}

func (g Google) Read(ctx context.Context, spreadsheet, area string) ([][]string, error) {
	opts, err := credentials.Options(ctx, g.Credentials, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, err
	}

	google, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	response, err := google.Spreadsheets.Values.Get(spreadsheet, area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	return Cells(response), nil
}

// Cells converts a value range to rows of strings. Non-string cells are formatted with %v.
func Cells(data *sheets.ValueRange) [][]string {
	if data == nil {
		return [][]string{}
	}

	rows := make([][]string, 0, len(data.Values))
	for _, row := range data.Values {
		record := make([]string, len(row))
		for i, v := range row {
			if s, ok := v.(string); ok {
				record[i] = s
			} else if v != nil {
				record[i] = fmt.Sprintf("%v", v)
			}
		}

		rows = append(rows, record)
	}

	return rows
}

// ParseID extracts the spreadsheet ID from a docs.google.com URL, or validates a bare ID.
func ParseID(v string) (string, error) {
	v = strings.TrimSpace(v)

	if match := urlRegex.FindStringSubmatch(v); len(match) > 1 && match[1] != "" {
		return match[1], nil
	}

	if idRegex.MatchString(v) {
		return v, nil
	}

	return "", fmt.Errorf("invalid spreadsheet '%s' - expected an ID or a URL like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'", v)
}

// SheetName returns the worksheet name of an A1-notation range, e.g. 'API' for 'API!A:B'.
func SheetName(area string) (string, error) {
	match := rangeRegex.FindStringSubmatch(strings.TrimSpace(area))
	if len(match) < 2 {
		return "", fmt.Errorf("invalid range '%s' - expected something like 'API!A:B'", area)
	}

	return strings.Trim(match[1], "'"), nil
}
