// Package geo implements the OpenStreetMap enrichment pipeline: a rate-limited
// Nominatim client with name-simplification and reverse-geocode fallbacks,
// distance-based match validation, and normalization of OSM extratags into
// contact, payment and facility data.
package geo

import (
	"zerowaste_map_backend/internal/hours"
)

// MatchType tags the confidence of an enrichment result.
type MatchType string

const (
	// MatchNameSearch means the business was found by name within the
	// accepted distance of the reference coordinate.
	MatchNameSearch MatchType = "name_search"
	// MatchReverseGeocode means only the address was resolved from the
	// coordinate; the business itself was not verified.
	MatchReverseGeocode MatchType = "reverse_geocode"
	// MatchNone means nothing was found.
	MatchNone MatchType = "none"
)

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// TagValue is one value from a provider tag dictionary. OSM extratags are
// almost always strings, but boolean literals do occur in the wild, so the
// value is kept as a small tagged union instead of an open dynamic type.
type TagValue struct {
	Text   string
	Bool   bool
	IsBool bool
}

// StringTag creates a string-valued tag.
func StringTag(text string) TagValue {
	return TagValue{Text: text}
}

// BoolTag creates a boolean-valued tag.
func BoolTag(value bool) TagValue {
	return TagValue{Bool: value, IsBool: true}
}

// TagMap is a provider tag dictionary keyed by OSM tag name.
type TagMap map[string]TagValue

// AddressFragments are the structured address parts of a geocoding result.
type AddressFragments struct {
	Road        string `json:"road,omitempty"`
	HouseNumber string `json:"houseNumber,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	City        string `json:"city,omitempty"`
	Suburb      string `json:"suburb,omitempty"`
}

// Candidate is one geocoding result from the provider, folded into an
// EnrichedResult when accepted and discarded otherwise.
type Candidate struct {
	Coord       Coordinate
	DisplayName string
	Address     AddressFragments
	ExtraTags   TagMap
}

// Address is the output of a plain forward or reverse geocode: address
// fragments plus the resolved coordinate, without business verification.
type Address struct {
	Coord       Coordinate       `json:"coord"`
	DisplayName string           `json:"displayName"`
	Address     AddressFragments `json:"address"`
}

// ContactInfo holds normalized contact fields extracted from extratags.
// Empty fields mean the tag was absent; values are never fabricated.
type ContactInfo struct {
	Phone     string `json:"phone,omitempty"`
	Website   string `json:"website,omitempty"`
	Email     string `json:"email,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// IsZero reports whether no contact field was extracted.
func (c ContactInfo) IsZero() bool {
	return c == ContactInfo{}
}

// PaymentMethods is the normalized set of accepted payment flags. Only flags
// that evaluated true are set; the whole struct is omitted when none did.
type PaymentMethods struct {
	Cash            bool `json:"cash,omitempty"`
	CreditCards     bool `json:"credit_cards,omitempty"`
	DebitCards      bool `json:"debit_cards,omitempty"`
	Contactless     bool `json:"contactless,omitempty"`
	Maestro         bool `json:"maestro,omitempty"`
	Visa            bool `json:"visa,omitempty"`
	Mastercard      bool `json:"mastercard,omitempty"`
	AmericanExpress bool `json:"american_express,omitempty"`
	MobilePayment   bool `json:"mobile_payment,omitempty"`
}

// Any reports whether at least one payment flag is set.
func (p PaymentMethods) Any() bool {
	return p != PaymentMethods{}
}

// Facilities is the normalized set of amenity flags, with the same
// all-or-nothing presence rule as PaymentMethods.
type Facilities struct {
	Toilets        bool `json:"toilets,omitempty"`
	Wheelchair     bool `json:"wheelchair,omitempty"`
	Wifi           bool `json:"wifi,omitempty"`
	Organic        bool `json:"organic,omitempty"`
	OutdoorSeating bool `json:"outdoor_seating,omitempty"`
	Takeaway       bool `json:"takeaway,omitempty"`
}

// Any reports whether at least one facility flag is set.
func (f Facilities) Any() bool {
	return f != Facilities{}
}

// EnrichedResult is the accepted output of the enrichment pipeline.
type EnrichedResult struct {
	Coord               Coordinate      `json:"coord"`
	Street              string          `json:"street"`
	City                string          `json:"city"`
	PostalCode          string          `json:"postalCode"`
	Suburb              string          `json:"suburb,omitempty"`
	Contact             ContactInfo     `json:"contact"`
	Payment             *PaymentMethods `json:"payment,omitempty"`
	Facilities          *Facilities     `json:"facilities,omitempty"`
	OpeningHoursRaw     string          `json:"openingHoursRaw,omitempty"`
	OpeningHoursPreview string          `json:"openingHoursPreview,omitempty"`
	OpeningHours        *hours.Schedule `json:"openingHours,omitempty"`
	MatchType           MatchType       `json:"matchType"`
}
