package geo

import "testing"

func TestIsTrue(t *testing.T) {
	tests := []struct {
		name  string
		value TagValue
		want  bool
	}{
		{"bool true", BoolTag(true), true},
		{"bool false", BoolTag(false), false},
		{"yes", StringTag("yes"), true},
		{"true", StringTag("true"), true},
		{"mixed case", StringTag("Yes"), true},
		{"padded", StringTag("  TRUE  "), true},
		{"no", StringTag("no"), false},
		{"numeric", StringTag("1"), false},
		{"empty", StringTag(""), false},
		{"absent zero value", TagValue{}, false},
	}

	for _, tc := range tests {
		if got := IsTrue(tc.value); got != tc.want {
			t.Errorf("%s: IsTrue = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestExtractContactsPrefersNamespacedTags(t *testing.T) {
	tags := TagMap{
		"phone":         StringTag("0171 1111111"),
		"contact:phone": StringTag("0171 2345678"),
		"website":       StringTag("https://example.de"),
		"email":         StringTag("laden@example.de"),
	}

	contact := ExtractContacts(tags)
	if contact.Phone != "+491712345678" {
		t.Errorf("contact:phone must win and be normalized, got %q", contact.Phone)
	}
	if contact.Website != "https://example.de" {
		t.Errorf("unexpected website %q", contact.Website)
	}
	if contact.Email != "laden@example.de" {
		t.Errorf("unexpected email %q", contact.Email)
	}
	if contact.Instagram != "" {
		t.Errorf("absent instagram must stay empty, got %q", contact.Instagram)
	}
}

func TestExtractContactsEmpty(t *testing.T) {
	if contact := ExtractContacts(TagMap{}); !contact.IsZero() {
		t.Errorf("empty tags must yield zero contact info, got %+v", contact)
	}
}

func TestExtractContactsKeepsUnparsablePhone(t *testing.T) {
	tags := TagMap{"contact:phone": StringTag("nicht erreichbar")}
	contact := ExtractContacts(tags)
	if contact.Phone != "nicht erreichbar" {
		t.Errorf("unparsable phone should pass through, got %q", contact.Phone)
	}
}

func TestExtractPayment(t *testing.T) {
	tests := []struct {
		name string
		tags TagMap
		want *PaymentMethods
	}{
		{
			name: "apple pay maps to mobile payment only",
			tags: TagMap{"payment:apple_pay": StringTag("yes")},
			want: &PaymentMethods{MobilePayment: true},
		},
		{
			name: "girocard counts as debit card",
			tags: TagMap{"payment:girocard": StringTag("yes")},
			want: &PaymentMethods{DebitCards: true},
		},
		{
			name: "multiple tags collapse onto one flag",
			tags: TagMap{
				"payment:visa":       StringTag("yes"),
				"payment:mastercard": StringTag("yes"),
				"payment:nfc":        BoolTag(true),
			},
			want: &PaymentMethods{Visa: true, Mastercard: true, Contactless: true},
		},
		{
			name: "negative values set nothing",
			tags: TagMap{"payment:cash": StringTag("no")},
			want: nil,
		},
		{
			name: "unknown payment tags are ignored",
			tags: TagMap{"payment:bitcoin": StringTag("yes")},
			want: nil,
		},
		{
			name: "empty tags",
			tags: TagMap{},
			want: nil,
		},
	}

	for _, tc := range tests {
		got := ExtractPayment(tc.tags)
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("%s: expected nil, got %+v", tc.name, *got)
		case tc.want != nil && got == nil:
			t.Errorf("%s: expected %+v, got nil", tc.name, *tc.want)
		case tc.want != nil && *got != *tc.want:
			t.Errorf("%s: got %+v, want %+v", tc.name, *got, *tc.want)
		}
	}
}

func TestExtractFacilities(t *testing.T) {
	tests := []struct {
		name string
		tags TagMap
		want *Facilities
	}{
		{
			name: "wlan means wifi",
			tags: TagMap{"internet_access": StringTag("wlan")},
			want: &Facilities{Wifi: true},
		},
		{
			name: "free internet access means wifi",
			tags: TagMap{"internet_access:fee": StringTag("no")},
			want: &Facilities{Wifi: true},
		},
		{
			name: "paid terminal access is not wifi",
			tags: TagMap{
				"internet_access":     StringTag("terminal"),
				"internet_access:fee": StringTag("yes"),
			},
			want: nil,
		},
		{
			name: "organic only",
			tags: TagMap{"organic": StringTag("only")},
			want: &Facilities{Organic: true},
		},
		{
			name: "organic rejects generic truthiness",
			tags: TagMap{"organic": StringTag("true")},
			want: nil,
		},
		{
			name: "standard boolean tags",
			tags: TagMap{
				"toilets":         StringTag("yes"),
				"wheelchair":      StringTag("Yes"),
				"outdoor_seating": BoolTag(true),
				"takeaway":        StringTag("yes"),
			},
			want: &Facilities{Toilets: true, Wheelchair: true, OutdoorSeating: true, Takeaway: true},
		},
		{
			name: "all negative",
			tags: TagMap{
				"toilets":    StringTag("no"),
				"wheelchair": StringTag("limited"),
			},
			want: nil,
		},
		{
			name: "empty tags",
			tags: TagMap{},
			want: nil,
		},
	}

	for _, tc := range tests {
		got := ExtractFacilities(tc.tags)
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("%s: expected nil, got %+v", tc.name, *got)
		case tc.want != nil && got == nil:
			t.Errorf("%s: expected %+v, got nil", tc.name, *tc.want)
		case tc.want != nil && *got != *tc.want:
			t.Errorf("%s: got %+v, want %+v", tc.name, *got, *tc.want)
		}
	}
}
