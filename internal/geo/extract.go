package geo

import (
	"strings"

	"zerowaste_map_backend/platform/phone"
)

// IsTrue coerces a tag value to a boolean: the boolean literal true, or a
// string equal to "yes" or "true" after trimming, case-insensitive. Anything
// else, including an absent tag's zero value, is false.
func IsTrue(value TagValue) bool {
	if value.IsBool {
		return value.Bool
	}

	switch strings.ToLower(strings.TrimSpace(value.Text)) {
	case "yes", "true":
		return true
	}
	return false
}

// contactField returns the value for a contact field, preferring the
// "contact:"-namespaced tag over the bare one. Missing fields stay empty.
func contactField(tags TagMap, field string) string {
	if value, ok := tags["contact:"+field]; ok && value.Text != "" {
		return value.Text
	}
	if value, ok := tags[field]; ok {
		return value.Text
	}
	return ""
}

// ExtractContacts pulls the contact fields out of a tag dictionary. Phone
// numbers are normalized to E.164 where possible.
func ExtractContacts(tags TagMap) ContactInfo {
	contact := ContactInfo{
		Phone:     contactField(tags, "phone"),
		Website:   contactField(tags, "website"),
		Email:     contactField(tags, "email"),
		Instagram: contactField(tags, "instagram"),
	}

	if contact.Phone != "" {
		contact.Phone = phone.NormalizeE164(contact.Phone)
	}

	return contact
}

// paymentTagTable is the fixed many-to-one mapping from raw OSM payment tags
// to normalized flags. Several provider tags collapse onto the same flag;
// only keys present in the dictionary are ever evaluated.
var paymentTagTable = map[string]func(*PaymentMethods){
	"payment:cash":             func(p *PaymentMethods) { p.Cash = true },
	"payment:credit_cards":     func(p *PaymentMethods) { p.CreditCards = true },
	"payment:cards":            func(p *PaymentMethods) { p.CreditCards = true },
	"payment:debit_cards":      func(p *PaymentMethods) { p.DebitCards = true },
	"payment:girocard":         func(p *PaymentMethods) { p.DebitCards = true },
	"payment:electronic_purses": func(p *PaymentMethods) { p.Contactless = true },
	"payment:nfc":              func(p *PaymentMethods) { p.Contactless = true },
	"payment:contactless":      func(p *PaymentMethods) { p.Contactless = true },
	"payment:maestro":          func(p *PaymentMethods) { p.Maestro = true },
	"payment:visa":             func(p *PaymentMethods) { p.Visa = true },
	"payment:mastercard":       func(p *PaymentMethods) { p.Mastercard = true },
	"payment:american_express": func(p *PaymentMethods) { p.AmericanExpress = true },
	"payment:amex":             func(p *PaymentMethods) { p.AmericanExpress = true },
	"payment:apple_pay":        func(p *PaymentMethods) { p.MobilePayment = true },
	"payment:google_pay":       func(p *PaymentMethods) { p.MobilePayment = true },
}

// ExtractPayment normalizes payment tags into a PaymentMethods flag set.
// Returns nil when no flag evaluated true, never an all-false struct.
func ExtractPayment(tags TagMap) *PaymentMethods {
	var methods PaymentMethods
	for key, set := range paymentTagTable {
		if value, ok := tags[key]; ok && IsTrue(value) {
			set(&methods)
		}
	}

	if !methods.Any() {
		return nil
	}
	return &methods
}

// ExtractFacilities normalizes amenity tags into a Facilities flag set.
// Most fields use standard boolean coercion on their same-named tag; wifi and
// organic have bespoke rules. Returns nil when no flag evaluated true.
func ExtractFacilities(tags TagMap) *Facilities {
	facilities := Facilities{
		Toilets:        IsTrue(tags["toilets"]),
		Wheelchair:     IsTrue(tags["wheelchair"]),
		Wifi:           hasWifi(tags),
		Organic:        isOrganic(tags["organic"]),
		OutdoorSeating: IsTrue(tags["outdoor_seating"]),
		Takeaway:       IsTrue(tags["takeaway"]),
	}

	if !facilities.Any() {
		return nil
	}
	return &facilities
}

// hasWifi reports wifi availability: wlan access, or internet access that is
// explicitly free of charge.
func hasWifi(tags TagMap) bool {
	if tags["internet_access"].Text == "wlan" {
		return true
	}
	return tags["internet_access:fee"].Text == "no"
}

// isOrganic only accepts the explicit OSM values "yes" and "only"; the
// generic boolean coercion would wrongly accept "true" here.
func isOrganic(value TagValue) bool {
	return value.Text == "yes" || value.Text == "only"
}
