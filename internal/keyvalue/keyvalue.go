// Package keyvalue turns a two-column worksheet into a flat JSON object.
package keyvalue

import (
	"encoding/json"
)

// Map holds the first column as keys and the second as values. A nil value is a key row
// without a second cell and serialises as null.
type Map map[string]*string

// Build maps each row's first cell to its second cell. Rows with an empty first cell are
// skipped and a repeated key keeps the last value.
func Build(rows [][]string) Map {
	m := Map{}

	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}

		if len(row) > 1 {
			v := row[1]
			m[row[0]] = &v
		} else {
			m[row[0]] = nil
		}
	}

	return m
}

// JSON serialises the map with sorted keys, so unchanged rows give identical bytes.
func (m Map) JSON() ([]byte, error) {
	return json.Marshal(map[string]*string(m))
}
