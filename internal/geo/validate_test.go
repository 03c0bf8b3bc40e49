package geo

import (
	"math"
	"testing"
)

// Reference point in the Frankfurt city centre.
var frankfurt = Coordinate{Lat: 50.1109, Lon: 8.6821}

func TestDistanceKM(t *testing.T) {
	// Frankfurt Hauptwache to Frankfurt Hauptbahnhof is roughly 1.4 km.
	hauptbahnhof := Coordinate{Lat: 50.1071, Lon: 8.6638}
	d := DistanceKM(frankfurt, hauptbahnhof)
	if d < 1.2 || d > 1.6 {
		t.Errorf("unexpected distance %f km", d)
	}

	if d := DistanceKM(frankfurt, frankfurt); d != 0 {
		t.Errorf("distance to self should be 0, got %f", d)
	}
}

func TestSelectCandidatePicksMinimumDistance(t *testing.T) {
	near := Candidate{DisplayName: "near", Coord: Coordinate{Lat: 50.1120, Lon: 8.6830}}
	far := Candidate{DisplayName: "far", Coord: Coordinate{Lat: 50.1180, Lon: 8.6900}}

	// Provider ordering puts the far candidate first; selection must ignore it.
	selected, ok := SelectCandidate(&frankfurt, []Candidate{far, near}, DefaultMaxDistanceKM)
	if !ok {
		t.Fatal("expected a selected candidate")
	}
	if selected.DisplayName != "near" {
		t.Errorf("expected minimum-distance candidate, got %q", selected.DisplayName)
	}
}

func TestSelectCandidateThresholdIsInclusive(t *testing.T) {
	candidate := Candidate{Coord: Coordinate{Lat: 50.1210, Lon: 8.6950}}
	distance := DistanceKM(frankfurt, candidate.Coord)
	if distance <= 0 || distance > DefaultMaxDistanceKM {
		t.Fatalf("test candidate should be within the default radius, got %f km", distance)
	}

	// Exactly at the boundary: accepted.
	if _, ok := SelectCandidate(&frankfurt, []Candidate{candidate}, distance); !ok {
		t.Error("candidate at exactly the threshold must be accepted")
	}

	// Just beyond the boundary: rejected.
	if _, ok := SelectCandidate(&frankfurt, []Candidate{candidate}, distance-1e-9); ok {
		t.Error("candidate beyond the threshold must be rejected")
	}
}

func TestSelectCandidateRejectsAllBeyondRadius(t *testing.T) {
	offenbach := Candidate{Coord: Coordinate{Lat: 50.0956, Lon: 8.7761}} // ~7 km away
	if _, ok := SelectCandidate(&frankfurt, []Candidate{offenbach}, DefaultMaxDistanceKM); ok {
		t.Error("candidate far outside the radius must be rejected")
	}
}

func TestSelectCandidateWithoutReferenceAcceptsFirst(t *testing.T) {
	first := Candidate{DisplayName: "first", Coord: Coordinate{Lat: 52.52, Lon: 13.405}}
	second := Candidate{DisplayName: "second", Coord: frankfurt}

	selected, ok := SelectCandidate(nil, []Candidate{first, second}, DefaultMaxDistanceKM)
	if !ok {
		t.Fatal("expected a selected candidate")
	}
	if selected.DisplayName != "first" {
		t.Errorf("without a reference the first result wins, got %q", selected.DisplayName)
	}
}

func TestSelectCandidateEmptyInput(t *testing.T) {
	if _, ok := SelectCandidate(&frankfurt, nil, DefaultMaxDistanceKM); ok {
		t.Error("no candidates should select nothing")
	}
	if _, ok := SelectCandidate(nil, []Candidate{}, DefaultMaxDistanceKM); ok {
		t.Error("no candidates should select nothing")
	}
}

func TestDistanceMonotonicity(t *testing.T) {
	// For candidates at increasing latitude offsets the computed distance
	// must increase as well; the validator relies on this.
	previous := 0.0
	for i := 1; i <= 5; i++ {
		c := Coordinate{Lat: frankfurt.Lat + float64(i)*0.001, Lon: frankfurt.Lon}
		d := DistanceKM(frankfurt, c)
		if d <= previous {
			t.Fatalf("distance not monotonic at step %d: %f <= %f", i, d, previous)
		}
		previous = d
	}
	if math.IsNaN(previous) {
		t.Fatal("distance computation produced NaN")
	}
}

func TestSimplifyName(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"Die Auffüllerei - unverpackt einkaufen", "Die Auffüllerei", true},
		{"gramm.genau | Unverpackt-Laden", "gramm.genau", true},
		{"Laden_Zwei", "Laden", true},
		{"Zero Waste – Frankfurt", "Zero Waste", true},
		{"Hofladen — Bio", "Hofladen", true},
		{"NoSeparatorName", "", false},
		{"", "", false},
		{"- leading dash", "", false},
	}

	for _, tc := range tests {
		got, ok := SimplifyName(tc.name)
		if ok != tc.ok || got != tc.want {
			t.Errorf("SimplifyName(%q) = (%q, %v), want (%q, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}
