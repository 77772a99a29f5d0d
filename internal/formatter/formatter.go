// package formatter provides presentation helpers for article records:
// category tagging, date formatting and text truncation.
package formatter

import (
	"strings"
	"time"

	"buzznews/internal/shared"
)

// DefaultCategory is the label used when no source is available at all.
const DefaultCategory = "General News"

// CategoryTag classifies an article source into a category label. The source
// is lower-cased, stripped of a leading scheme and "www." prefix, and cut at
// the first slash; the first table entry whose lookup key is contained in
// that normalized value wins. Table order is significant. With no match the
// raw source is returned, and an empty source yields [DefaultCategory].
func CategoryTag(source string, table []shared.CategoryConfig) string {
	if source == "" {
		return DefaultCategory
	}

	clean := strings.ToLower(source)
	clean = strings.TrimPrefix(clean, "https://")
	clean = strings.TrimPrefix(clean, "http://")
	clean = strings.TrimPrefix(clean, "www.")
	if idx := strings.Index(clean, "/"); idx >= 0 {
		clean = clean[:idx]
	}

	for _, entry := range table {
		if entry.Lookup != "" && strings.Contains(clean, entry.Lookup) {
			return entry.Label
		}
	}

	return source
}

// FormatDate renders an API timestamp as "Jan 2, 2006". Empty input yields
// "Unknown Date"; unparsable input is returned as-is rather than failing.
func FormatDate(value string) string {
	if value == "" {
		return "Unknown Date"
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.Format("Jan 2, 2006")
		}
	}

	return value
}

// Truncate shortens text to at most max runes, appending an ellipsis when
// anything was cut.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
