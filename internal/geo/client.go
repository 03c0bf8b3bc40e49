package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"zerowaste_map_backend/platform/config"
	"zerowaste_map_backend/platform/logger"

	"golang.org/x/time/rate"
)

const searchResultLimit = 5

// nominatimAddress mirrors the relevant parts of the OSM address payload.
type nominatimAddress struct {
	Road         string `json:"road"`
	HouseNumber  string `json:"house_number"`
	Postcode     string `json:"postcode"`
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Municipality string `json:"municipality"`
	Suburb       string `json:"suburb"`
}

// nominatimPlace mirrors one entry of the /search payload.
type nominatimPlace struct {
	Lat         string                     `json:"lat"`
	Lon         string                     `json:"lon"`
	DisplayName string                     `json:"display_name"`
	Address     nominatimAddress           `json:"address"`
	ExtraTags   map[string]json.RawMessage `json:"extratags"`
}

// nominatimReverse mirrors the /reverse payload. Nominatim signals a failed
// reverse lookup with a 200 response carrying an "error" field.
type nominatimReverse struct {
	nominatimPlace
	Error string `json:"error"`
}

// Client queries the Nominatim HTTP API. All requests from one Client are
// strictly sequential and spaced by the configured minimum interval, which is
// the provider's hard rate limit.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	debounce   time.Duration
	mu         sync.Mutex
	log        *logger.Logger
}

// NewClient creates a Nominatim client from the geocoding configuration.
func NewClient(cfg config.GeocodingConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:    cfg.GetNominatimBaseURL(),
		userAgent:  cfg.GetGeocodeUserAgent(),
		httpClient: &http.Client{Timeout: cfg.GetGeocodeTimeout()},
		limiter:    rate.NewLimiter(rate.Every(cfg.GetGeocodeMinInterval()), 1),
		debounce:   cfg.GetGeocodeDebounce(),
		log:        log,
	}
}

// Search performs a forward geocode for the given free-text query, returning
// up to five candidates with address details and extratags attached.
func (c *Client) Search(ctx context.Context, query string) ([]Candidate, error) {
	params := url.Values{}
	params.Add("q", query)
	params.Add("format", "json")
	params.Add("addressdetails", "1")
	params.Add("extratags", "1")
	params.Add("limit", strconv.Itoa(searchResultLimit))

	var places []nominatimPlace
	if err := c.get(ctx, "/search", "search", params, &places); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(places))
	for _, place := range places {
		candidate, ok := buildCandidate(place)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// Reverse performs a reverse geocode for the given coordinate. It always
// resolves to an address when the coordinate is on land; there is no business
// verification.
func (c *Client) Reverse(ctx context.Context, coord Coordinate) (*Candidate, error) {
	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	params.Add("format", "json")
	params.Add("addressdetails", "1")

	var payload nominatimReverse
	if err := c.get(ctx, "/reverse", "reverse", params, &payload); err != nil {
		return nil, err
	}

	if payload.Error != "" {
		return nil, fmt.Errorf("reverse geocode failed: %s", payload.Error)
	}

	candidate, ok := buildCandidate(payload.nominatimPlace)
	if !ok {
		// Reverse results may omit lat/lon; fall back to the query coordinate.
		candidate = Candidate{
			Coord:       coord,
			DisplayName: payload.DisplayName,
			Address:     buildFragments(payload.Address),
			ExtraTags:   decodeTags(payload.ExtraTags),
		}
	}

	return &candidate, nil
}

// get issues one rate-limited GET against the provider. The mutex serializes
// all requests from this client; the limiter enforces the minimum spacing
// between them, across search, enrichment and reverse-geocode callers alike.
func (c *Client) get(ctx context.Context, path, operation string, params url.Values, out interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	// Provider policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := float64(time.Since(start).Milliseconds())
	if err != nil {
		c.log.UpstreamRequest("nominatim", operation, latency, err)
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("upstream api error: %d", resp.StatusCode)
		c.log.UpstreamRequest("nominatim", operation, latency, err)
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.UpstreamRequest("nominatim", operation, latency, err)
		return err
	}

	c.log.UpstreamRequest("nominatim", operation, latency, nil)
	return nil
}

func buildCandidate(place nominatimPlace) (Candidate, bool) {
	lat, err := strconv.ParseFloat(place.Lat, 64)
	if err != nil {
		return Candidate{}, false
	}
	lon, err := strconv.ParseFloat(place.Lon, 64)
	if err != nil {
		return Candidate{}, false
	}

	return Candidate{
		Coord:       Coordinate{Lat: lat, Lon: lon},
		DisplayName: place.DisplayName,
		Address:     buildFragments(place.Address),
		ExtraTags:   decodeTags(place.ExtraTags),
	}, true
}

func buildFragments(address nominatimAddress) AddressFragments {
	return AddressFragments{
		Road:        address.Road,
		HouseNumber: address.HouseNumber,
		PostalCode:  address.Postcode,
		City:        pickCity(address),
		Suburb:      address.Suburb,
	}
}

// pickCity resolves the settlement name: first non-empty of city, town,
// village, municipality.
func pickCity(address nominatimAddress) string {
	if address.City != "" {
		return address.City
	}
	if address.Town != "" {
		return address.Town
	}
	if address.Village != "" {
		return address.Village
	}
	return address.Municipality
}

// decodeTags converts the raw extratags dictionary into a TagMap. Values are
// strings in practice, but boolean literals are tolerated; anything else is
// dropped.
func decodeTags(raw map[string]json.RawMessage) TagMap {
	if len(raw) == 0 {
		return nil
	}

	tags := make(TagMap, len(raw))
	for key, value := range raw {
		var text string
		if err := json.Unmarshal(value, &text); err == nil {
			tags[key] = StringTag(text)
			continue
		}

		var flag bool
		if err := json.Unmarshal(value, &flag); err == nil {
			tags[key] = BoolTag(flag)
		}
	}

	return tags
}
