// Package plan parses pipe-delimited schedule tables out of generated text.
package plan

import (
	"strings"
)

// Row is one allocation of a subtopic to a suggested slot.
type Row struct {
	Subtopic      string
	Duration      string
	SuggestedSlot string
}

// ParseTable extracts allocation rows from free-form text. Only lines
// containing a pipe are considered. A line is split on pipes, fields are
// trimmed, and lines with at least three non-empty leading fields yield a
// row from the first three. Header and separator lines are skipped.
// Anything else in the text is ignored, so surrounding prose is harmless.
func ParseTable(text string) []Row {
	var rows []Row

	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}

		fields := splitFields(line)
		if len(fields) < 3 {
			continue
		}

		subtopic, duration, slot := fields[0], fields[1], fields[2]
		if isHeaderRow(subtopic) || isSeparatorRow(subtopic) {
			continue
		}
		if subtopic == "" || duration == "" || slot == "" {
			continue
		}

		rows = append(rows, Row{
			Subtopic:      subtopic,
			Duration:      duration,
			SuggestedSlot: slot,
		})
	}

	return rows
}

// splitFields splits a table line on pipes and trims each cell. Leading and
// trailing empty cells from bordered tables ("| a | b |") are dropped.
func splitFields(line string) []string {
	parts := strings.Split(line, "|")

	var fields []string
	for _, part := range parts {
		fields = append(fields, strings.TrimSpace(part))
	}

	for len(fields) > 0 && fields[0] == "" {
		fields = fields[1:]
	}
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}

	return fields
}

func isHeaderRow(firstField string) bool {
	return strings.EqualFold(firstField, "subtopic")
}

func isSeparatorRow(firstField string) bool {
	trimmed := strings.Trim(firstField, "-: ")
	return trimmed == "" && firstField != ""
}
