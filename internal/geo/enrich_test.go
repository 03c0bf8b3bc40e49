package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"zerowaste_map_backend/platform/apperr"
	"zerowaste_map_backend/platform/config"
	"zerowaste_map_backend/platform/logger"
)

// fakeNominatim records every request and serves canned JSON per query.
type fakeNominatim struct {
	mu       sync.Mutex
	searches []string
	reverses int

	// searchResponses maps the "q" parameter to a JSON array body.
	searchResponses map[string]string
	reverseResponse string
	status          int
}

func (f *fakeNominatim) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if f.status != 0 {
			w.WriteHeader(f.status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search":
			q := r.URL.Query().Get("q")
			f.searches = append(f.searches, q)
			body, ok := f.searchResponses[q]
			if !ok {
				body = "[]"
			}
			fmt.Fprint(w, body)
		case "/reverse":
			f.reverses++
			fmt.Fprint(w, f.reverseResponse)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func (f *fakeNominatim) recorded() ([]string, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searches...), f.reverses
}

func newTestEnricher(t *testing.T, fake *fakeNominatim) (*Enricher, func()) {
	t.Helper()
	server := httptest.NewServer(fake.handler())

	cfg := &config.Config{
		NominatimBaseURL:     server.URL,
		GeocodeUserAgent:     "test-agent/1.0",
		GeocodeMaxDistanceKM: DefaultMaxDistanceKM,
		GeocodeMinInterval:   time.Millisecond,
		GeocodeTimeout:       2 * time.Second,
	}

	log := logger.New("development")
	client := NewClient(cfg, log)
	return NewEnricher(client, cfg, log), server.Close
}

func placeJSON(lat, lon float64, name string, extras string) string {
	if extras == "" {
		extras = "{}"
	}
	return fmt.Sprintf(`{"lat":"%f","lon":"%f","display_name":"%s",
		"address":{"road":"Berger Straße","house_number":"12","postcode":"60316","city":"Frankfurt am Main","suburb":"Nordend"},
		"extratags":%s}`, lat, lon, name, extras)
}

func TestSearchWithExtrasFullNameMatch(t *testing.T) {
	extras := `{"contact:phone":"0171 2345678","website":"https://auffuellerei.de",
		"payment:cash":"yes","payment:girocard":"yes",
		"organic":"only","opening_hours":"Mo-Fr 10:00-18:00; Sa 10:00-14:00"}`
	fake := &fakeNominatim{searchResponses: map[string]string{
		"Die Auffüllerei": "[" + placeJSON(50.1235, 8.7010, "Die Auffüllerei", extras) + "]",
	}}
	enricher, cleanup := newTestEnricher(t, fake)
	defer cleanup()

	ref := Coordinate{Lat: 50.1230, Lon: 8.7000}
	result, err := enricher.SearchWithExtras(context.Background(), "Die Auffüllerei", &ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	searches, reverses := fake.recorded()
	if len(searches) != 1 || reverses != 0 {
		t.Fatalf("expected exactly one search and no reverse, got %d/%d", len(searches), reverses)
	}

	if result.MatchType != MatchNameSearch {
		t.Errorf("match type = %q, want %q", result.MatchType, MatchNameSearch)
	}
	if result.Street != "Berger Straße 12" {
		t.Errorf("street = %q", result.Street)
	}
	if result.City != "Frankfurt am Main" || result.PostalCode != "60316" || result.Suburb != "Nordend" {
		t.Errorf("unexpected address fields: %+v", result)
	}
	if result.Contact.Phone != "+491712345678" {
		t.Errorf("phone = %q", result.Contact.Phone)
	}
	if result.Contact.Website != "https://auffuellerei.de" {
		t.Errorf("website = %q", result.Contact.Website)
	}
	if result.Payment == nil || !result.Payment.Cash || !result.Payment.DebitCards {
		t.Errorf("payment = %+v", result.Payment)
	}
	if result.Facilities == nil || !result.Facilities.Organic {
		t.Errorf("facilities = %+v", result.Facilities)
	}
	if result.OpeningHoursRaw != "Mo-Fr 10:00-18:00; Sa 10:00-14:00" {
		t.Errorf("raw hours = %q", result.OpeningHoursRaw)
	}
	if result.OpeningHoursPreview != "Mo-Fr 10:00-18:00, Sa 10:00-14:00" {
		t.Errorf("hours preview = %q", result.OpeningHoursPreview)
	}
	if result.OpeningHours == nil || len(result.OpeningHours.Entries) != 6 {
		t.Errorf("parsed hours = %+v", result.OpeningHours)
	}
}

func TestSearchWithExtrasSimplifiedNameFallback(t *testing.T) {
	fake := &fakeNominatim{searchResponses: map[string]string{
		// Full name finds nothing; simplified name hits.
		"gramm.genau": "[" + placeJSON(50.1200, 8.6900, "gramm.genau", "") + "]",
	}}
	enricher, cleanup := newTestEnricher(t, fake)
	defer cleanup()

	ref := Coordinate{Lat: 50.1198, Lon: 8.6895}
	result, err := enricher.SearchWithExtras(context.Background(), "gramm.genau | Unverpackt-Laden", &ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	searches, reverses := fake.recorded()
	if len(searches) != 2 || reverses != 0 {
		t.Fatalf("expected two searches and no reverse, got %d/%d", len(searches), reverses)
	}
	if searches[0] != "gramm.genau | Unverpackt-Laden" || searches[1] != "gramm.genau" {
		t.Fatalf("unexpected search order: %v", searches)
	}
	if result.MatchType != MatchNameSearch {
		t.Errorf("match type = %q, want %q", result.MatchType, MatchNameSearch)
	}
}

func TestSearchWithExtrasRejectsDistantMatchThenReverses(t *testing.T) {
	// A same-named shop in Berlin must not be accepted for a Frankfurt
	// coordinate; the pipeline falls through to reverse geocoding.
	berlin := placeJSON(52.5200, 13.4050, "Unverpackt Berlin", `{"payment:cash":"yes"}`)
	fake := &fakeNominatim{
		searchResponses: map[string]string{
			"Unverpackt": "[" + berlin + "]",
		},
		reverseResponse: placeJSON(50.1109, 8.6821, "Hauptwache, Frankfurt am Main", ""),
	}
	enricher, cleanup := newTestEnricher(t, fake)
	defer cleanup()

	ref := Coordinate{Lat: 50.1109, Lon: 8.6821}
	result, err := enricher.SearchWithExtras(context.Background(), "Unverpackt", &ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	searches, reverses := fake.recorded()
	if len(searches) != 1 || reverses != 1 {
		t.Fatalf("expected one search and one reverse, got %d/%d", len(searches), reverses)
	}

	if result.MatchType != MatchReverseGeocode {
		t.Errorf("match type = %q, want %q", result.MatchType, MatchReverseGeocode)
	}
	// The fallback resolves the address only; nothing from the rejected
	// candidate's extratags may leak through.
	if !result.Contact.IsZero() || result.Payment != nil || result.Facilities != nil {
		t.Errorf("reverse fallback must not carry enrichment data: %+v", result)
	}
	if result.OpeningHoursRaw != "" || result.OpeningHours != nil {
		t.Errorf("reverse fallback must not carry opening hours: %+v", result)
	}
	if result.Street != "Berger Straße 12" {
		t.Errorf("street = %q", result.Street)
	}
}

func TestSearchWithExtrasNoReferenceNotFound(t *testing.T) {
	fake := &fakeNominatim{searchResponses: map[string]string{}}
	enricher, cleanup := newTestEnricher(t, fake)
	defer cleanup()

	_, err := enricher.SearchWithExtras(context.Background(), "Etwas - das es nicht gibt", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected a not-found error, got %v", err)
	}

	// Both name variants were tried, but no reverse without a coordinate.
	searches, reverses := fake.recorded()
	if len(searches) != 2 || reverses != 0 {
		t.Fatalf("expected two searches and no reverse, got %d/%d", len(searches), reverses)
	}
}

func TestSearchWithExtrasUpstreamFailure(t *testing.T) {
	fake := &fakeNominatim{status: http.StatusServiceUnavailable}
	enricher, cleanup := newTestEnricher(t, fake)
	defer cleanup()

	ref := Coordinate{Lat: 50.1109, Lon: 8.6821}
	_, err := enricher.SearchWithExtras(context.Background(), "Unverpackt", &ref)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected an unavailable error, got %v", err)
	}
}

func TestReverseGeocodeErrorPayload(t *testing.T) {
	fake := &fakeNominatim{reverseResponse: `{"error":"Unable to geocode"}`}
	enricher, cleanup := newTestEnricher(t, fake)
	defer cleanup()

	_, err := enricher.ReverseGeocode(context.Background(), Coordinate{Lat: 0, Lon: 0})
	if err == nil {
		t.Fatal("expected an error for the provider's error payload")
	}
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected an unavailable error, got %v", err)
	}
}

func TestGeocodeFirstResultWins(t *testing.T) {
	fake := &fakeNominatim{searchResponses: map[string]string{
		"Berger Straße 12, Frankfurt": "[" +
			placeJSON(50.1235, 8.7010, "first", "") + "," +
			placeJSON(50.2000, 8.8000, "second", "") + "]",
	}}
	enricher, cleanup := newTestEnricher(t, fake)
	defer cleanup()

	address, err := enricher.Geocode(context.Background(), "Berger Straße 12, Frankfurt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if address.DisplayName != "first" {
		t.Errorf("expected the provider's first result, got %q", address.DisplayName)
	}
}
