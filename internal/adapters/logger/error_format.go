package logger

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err into one entry per chain level. Joined errors
// contribute their members in order. zerr levels without a message lend their
// metadata to the next level.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	var walk func(current error)
	walk = func(current error) {
		for current != nil {
			if joined, ok := current.(interface{ Unwrap() []error }); ok {
				for _, inner := range joined.Unwrap() {
					walk(inner)
				}
				return
			}

			m, ok := current.(messager)
			if !ok {
				// Standard error: append full Error() and stop
				entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
				pending = nil
				return
			}

			var meta map[string]any
			if md, ok := current.(metadataer); ok {
				meta = md.Metadata()
			}

			if m.Message() == "" {
				pending = merge(pending, meta)
			} else {
				entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: merge(meta, pending)})
				pending = nil
			}

			u, ok := current.(interface{ Unwrap() error })
			if !ok {
				return
			}
			current = u.Unwrap()
		}
	}
	walk(err)

	return entries
}

func merge(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// formatErrorEntries renders entries as a headline followed by a "Caused by" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var formattedLines []string

	for i, entry := range entries {
		lines := strings.Split(entry.Message, "\n")

		lead, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				formattedLines = append(formattedLines, "", "  Caused by:")
			}
			lead, indent = "    → ", "      "
		}

		formattedLines = append(formattedLines, lead+lines[0])
		for _, line := range lines[1:] {
			formattedLines = append(formattedLines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			formattedLines = append(formattedLines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(formattedLines, "\n")
}
