// Package futurelist parses the future content listing of a static site generator.
package futurelist

import (
	"strings"

	"go.trai.ch/rebuildat/internal/core/domain"
)

const (
	dateColumn        = 3
	expiryDateColumn  = 4
	publishDateColumn = 5

	// minFields is the number of fields a row needs to carry a date.
	minFields = dateColumn + 1
)

// Result is the outcome of parsing a listing.
type Result struct {
	Entries []domain.RebuildEntry
	// Dropped counts data rows with too few fields, blank lines included.
	Dropped int
	// HeaderFound reports whether a header row was located.
	HeaderFound bool
}

// Parse extracts rebuild entries from output.
//
// Rows following the first line that starts with headerPrefix are data rows. If no
// such line exists every line is treated as a data row. Columns are taken by
// position, not by header name, and no CSV quoting is honoured.
func Parse(output, headerPrefix string) Result {
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	res := Result{Entries: []domain.RebuildEntry{}}
	rows := lines
	for i, line := range lines {
		if strings.HasPrefix(line, headerPrefix) {
			rows = lines[i+1:]
			res.HeaderFound = true
			break
		}
	}

	for _, row := range rows {
		fields := strings.Split(row, ",")
		if len(fields) < minFields {
			res.Dropped++
			continue
		}
		res.Entries = append(res.Entries, domain.RebuildEntry{
			Date:        field(fields, dateColumn),
			ExpiryDate:  field(fields, expiryDateColumn),
			PublishDate: field(fields, publishDateColumn),
		})
	}

	return res
}

func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
