package languageutil

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers keep state between calls, so a new one is built for every string.

func Title(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

// PlaceholderText query-escapes free text for placehold.co's text parameter,
// collapsing runs of whitespace into a single "+".
func PlaceholderText(s string) string {
	return url.QueryEscape(strings.Join(strings.Fields(s), " "))
}
