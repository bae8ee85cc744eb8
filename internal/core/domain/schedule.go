// Package domain holds the core types of rebuildat.
package domain

// RebuildEntry is one row of future content: the dates at which the site
// needs rebuilding because of it.
type RebuildEntry struct {
	Date        string `json:"date"`
	ExpiryDate  string `json:"expiryDate"`
	PublishDate string `json:"publishDate"`
}

// Schedule is the persisted rebuild schedule.
type Schedule struct {
	RebuildAt []RebuildEntry `json:"rebuild_at"`
}

// NewSchedule wraps entries in a Schedule. A nil slice becomes an empty one so
// that the encoded list is never null.
func NewSchedule(entries []RebuildEntry) Schedule {
	if entries == nil {
		entries = []RebuildEntry{}
	}
	return Schedule{RebuildAt: entries}
}
