// Package hours converts OSM opening_hours strings into a structured weekly
// schedule. Only the common weekday-range/time-range subset of the OSM grammar
// is handled; anything more exotic degrades to "no structure" so callers can
// fall back to showing the raw string.
package hours

import (
	"regexp"
	"strings"
)

// Special schedule markers.
const (
	SpecialAlwaysOpen    = "24/7"
	SpecialByAppointment = "by_appointment"
)

// Canonical day identifiers used in structured schedules.
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// weekOrder is the canonical week used to expand day ranges.
var weekOrder = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

var dayNames = map[string]string{
	"Mo": Monday,
	"Tu": Tuesday,
	"We": Wednesday,
	"Th": Thursday,
	"Fr": Friday,
	"Sa": Saturday,
	"Su": Sunday,
}

// Entry is one opening interval on a single day. A day without an entry is
// implicitly closed.
type Entry struct {
	Day    string `json:"day"`
	Opens  string `json:"opens"`
	Closes string `json:"closes"`
}

// Schedule is the structured form of an opening_hours string. Entries are
// ordered by appearance in the source string. Special is set for "24/7" and
// appointment-only inputs, in which case Entries is empty.
type Schedule struct {
	Entries []Entry `json:"entries"`
	Special string  `json:"special,omitempty"`
}

var timeRangePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})`)

// Parse converts a raw OSM opening_hours string into a Schedule.
// It returns nil when the input is empty or no part of it could be parsed;
// callers should then fall back to displaying the raw text.
func Parse(raw string) (schedule *Schedule) {
	// The grammar subset below should never panic, but malformed input must
	// degrade to "unparseable" rather than take down the caller.
	defer func() {
		if r := recover(); r != nil {
			schedule = nil
		}
	}()

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if trimmed == SpecialAlwaysOpen {
		return &Schedule{Entries: []Entry{}, Special: SpecialAlwaysOpen}
	}

	if strings.Contains(strings.ToLower(trimmed), "appointment") {
		return &Schedule{Entries: []Entry{}, Special: SpecialByAppointment}
	}

	entries := []Entry{}
	for _, segment := range strings.Split(trimmed, ";") {
		entries = append(entries, parseSegment(segment)...)
	}

	if len(entries) == 0 {
		return nil
	}

	return &Schedule{Entries: entries}
}

// parseSegment handles one "<day-spec> <time-range>" segment. Segments that
// don't match the expected shape contribute no entries; they never fail the
// whole parse.
func parseSegment(segment string) []Entry {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return nil
	}

	// Explicit closures ("Su off") carry no information beyond absence.
	if strings.Contains(strings.ToLower(segment), "off") {
		return nil
	}

	matches := timeRangePattern.FindAllStringSubmatch(segment, -1)
	if len(matches) != 1 {
		return nil
	}

	opens := padClock(matches[0][1]) + ":" + matches[0][2]
	closes := padClock(matches[0][3]) + ":" + matches[0][4]

	dayPart := strings.TrimSpace(segment[:strings.Index(segment, matches[0][0])])
	if dayPart == "" {
		return nil
	}

	days := expandDaySpec(dayPart)
	entries := make([]Entry, 0, len(days))
	for _, day := range days {
		entries = append(entries, Entry{Day: day, Opens: opens, Closes: closes})
	}

	return entries
}

// expandDaySpec resolves a day abbreviation, comma list, or dash range into
// canonical day names. A reversed or unknown range yields no days.
func expandDaySpec(spec string) []string {
	if strings.Contains(spec, "-") {
		bounds := strings.SplitN(spec, "-", 2)
		start := weekIndex(strings.TrimSpace(bounds[0]))
		end := weekIndex(strings.TrimSpace(bounds[1]))
		if start < 0 || end < 0 || start > end {
			return nil
		}

		days := make([]string, 0, end-start+1)
		for i := start; i <= end; i++ {
			days = append(days, dayNames[weekOrder[i]])
		}
		return days
	}

	var days []string
	for _, abbrev := range strings.Split(spec, ",") {
		if name, ok := dayNames[strings.TrimSpace(abbrev)]; ok {
			days = append(days, name)
		}
	}
	return days
}

func weekIndex(abbrev string) int {
	for i, day := range weekOrder {
		if day == abbrev {
			return i
		}
	}
	return -1
}

func padClock(hour string) string {
	if len(hour) == 1 {
		return "0" + hour
	}
	return hour
}
