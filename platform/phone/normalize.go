// Package phone normalizes phone numbers found in OSM tags and submissions.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// defaultRegion resolves numbers written without a country prefix, which is
// how most Frankfurt businesses tag theirs.
const defaultRegion = "DE"

// NormalizeE164 formats a phone number to E.164. Unparsable or invalid input
// is passed through trimmed rather than dropped, so a display value survives
// even when the provider data is messy.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}
