package geo

import (
	"strings"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// DefaultMaxDistanceKM is the default acceptance radius around the reference
// coordinate for name-search matches. The value ships as configuration; it
// has no documented derivation beyond field experience.
const DefaultMaxDistanceKM = 1.5

// DistanceKM returns the great-circle distance between two coordinates in
// kilometers.
func DistanceKM(a, b Coordinate) float64 {
	return orbgeo.Distance(orb.Point{a.Lon, a.Lat}, orb.Point{b.Lon, b.Lat}) / 1000
}

// SelectCandidate picks the best candidate for the given reference
// coordinate: the minimum-distance candidate, accepted only when it lies
// within maxDistanceKM (inclusive). Provider result ordering is ignored.
// Without a reference coordinate there is no validation context and the first
// candidate wins.
func SelectCandidate(ref *Coordinate, candidates []Candidate, maxDistanceKM float64) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}

	if ref == nil {
		return candidates[0], true
	}

	best := candidates[0]
	bestDistance := DistanceKM(*ref, best.Coord)
	for _, candidate := range candidates[1:] {
		if d := DistanceKM(*ref, candidate.Coord); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	if bestDistance > maxDistanceKM {
		return Candidate{}, false
	}

	return best, true
}

// nameSeparators are the characters at which a business name is truncated for
// the simplified retry, e.g. "Die Auffüllerei - unverpackt einkaufen" becomes
// "Die Auffüllerei".
var nameSeparators = []string{"-", "–", "—", "|", "_"}

// SimplifyName truncates a business name at the first separator and reports
// whether that produced a different, non-empty query worth retrying.
func SimplifyName(name string) (string, bool) {
	cut := -1
	for _, sep := range nameSeparators {
		if idx := strings.Index(name, sep); idx >= 0 && (cut < 0 || idx < cut) {
			cut = idx
		}
	}
	if cut < 0 {
		return "", false
	}

	simplified := strings.TrimSpace(name[:cut])
	if simplified == "" || simplified == strings.TrimSpace(name) {
		return "", false
	}

	return simplified, true
}
