package hours

import (
	"regexp"
	"strings"
)

// German substitutions for the day abbreviations that differ from OSM's
// English ones. Mo, Fr and Sa are identical in German.
var germanDays = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`\bTu\b`), "Di"},
	{regexp.MustCompile(`\bWe\b`), "Mi"},
	{regexp.MustCompile(`\bTh\b`), "Do"},
	{regexp.MustCompile(`\bSu\b`), "So"},
}

var publicHolidayPattern = regexp.MustCompile(`\bPH\s+(off|closed)\b`)

// FormatPreview renders a raw OSM opening_hours string as a German-localized
// preview. This is a best-effort textual substitution for quick display, not
// a parse: time ranges are passed through unvalidated.
func FormatPreview(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if trimmed == SpecialAlwaysOpen {
		return "Täglich 24 Stunden"
	}

	result := publicHolidayPattern.ReplaceAllString(trimmed, "Feiertage geschlossen")
	for _, day := range germanDays {
		result = day.pattern.ReplaceAllString(result, day.replacement)
	}
	result = strings.ReplaceAll(result, ";", ", ")

	return strings.Join(strings.Fields(result), " ")
}
