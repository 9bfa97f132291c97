// Package roster parses uploaded attendee lists for bulk check-in.
package roster

import (
	"strconv"
	"strings"

	"eventdesk/internal/domain"
)

// Parse extracts attendee ids from an uploaded roster file. The expected
// format is delimited text (one row per line, comma-separated fields) where
// the first field of each row is a decimal attendee id. A leading UTF-8 BOM
// is tolerated. Rows whose first field is not purely decimal digits are
// discarded silently; duplicates are kept.
//
// Returns domain.ErrUnsupportedFormat when the filename is not a .csv, and
// domain.ErrEmptyFile when no valid id was found in the whole file.
func Parse(filename string, data []byte) ([]int64, error) {
	if filename == "" || !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return nil, domain.ErrUnsupportedFormat
	}

	text := strings.TrimPrefix(string(data), "\ufeff")
	var ids []int64
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		field, _, _ := strings.Cut(line, ",")
		field = strings.TrimSpace(field)
		if !isDigits(field) {
			continue
		}
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			// Digits only but out of int64 range.
			continue
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, domain.ErrEmptyFile
	}
	return ids, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
