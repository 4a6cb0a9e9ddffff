package app

import (
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var (
	queryWhitespaceRegex = regexp.MustCompile(`\s+`)
	queryLiteralRegex    = regexp.MustCompile(`'(?:[^']|'')*'`)
)

// formatDBQueryForTrace collapses whitespace, masks string literals and caps
// the length of statements recorded on db spans.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	normalized = queryLiteralRegex.ReplaceAllString(normalized, "'?'")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
