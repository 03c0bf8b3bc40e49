// Command import-gmaps imports locations from a Google Takeout "Saved
// Places" GeoJSON export. Entries land as pending submissions so they pass
// through the normal moderation and enrichment flow.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"zerowaste_map_backend/internal/geo"
	"zerowaste_map_backend/internal/locations/repository"
	"zerowaste_map_backend/platform/config"
	"zerowaste_map_backend/platform/db"
	"zerowaste_map_backend/platform/logger"
)

const importWorkers = 4

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Geometry struct {
		// GeoJSON order: longitude, latitude.
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
	Properties struct {
		Location struct {
			Name    string `json:"name"`
			Address string `json:"address"`
		} `json:"location"`
	} `json:"properties"`
}

// addressPattern matches the postal code and city in a formatted address
// like "Berger Str. 12, 60316 Frankfurt am Main, Germany".
var addressPattern = regexp.MustCompile(`(\d{5})\s+([^,]+)`)

func main() {
	file := flag.String("file", "", "path to the Takeout GeoJSON export")
	category := flag.String("category", "other", "category assigned to imported locations")
	submitter := flag.String("submitter", "import@zerowaste-frankfurt.de", "submitter email recorded for imported locations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)

	if *file == "" {
		log.Error("missing required -file flag")
		os.Exit(2)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Error("failed to read export file", "file", *file, "error", err)
		os.Exit(1)
	}

	var collection featureCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		log.Error("failed to parse export file", "file", *file, "error", err)
		os.Exit(1)
	}
	log.Info("starting import", "file", *file, "features", len(collection.Features))

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	repo := repository.New(pool)

	var imported, skipped atomic.Int64

	// Progress lines collapse into one per burst instead of one per record.
	progress := geo.NewDebouncer(500 * time.Millisecond)
	defer progress.Stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(importWorkers)

	for _, f := range collection.Features {
		params, ok := toCreateParams(f, *category, *submitter)
		if !ok {
			skipped.Add(1)
			log.Warn("skipping feature without usable name or address",
				"name", f.Properties.Location.Name)
			continue
		}

		group.Go(func() error {
			if _, err := repo.Create(groupCtx, params); err != nil {
				// One bad record should not abort the whole import.
				skipped.Add(1)
				log.Error("failed to import location", "name", params.Name, "error", err)
				return nil
			}

			imported.Add(1)
			progress.Trigger(func() {
				log.Info("import progress", "imported", imported.Load(), "skipped", skipped.Load())
			})
			return nil
		})
	}

	_ = group.Wait()

	log.Info("import finished", "imported", imported.Load(), "skipped", skipped.Load())
}

func toCreateParams(f feature, category, submitter string) (repository.CreateParams, bool) {
	name := strings.TrimSpace(f.Properties.Location.Name)
	address := f.Properties.Location.Address
	if name == "" || address == "" {
		return repository.CreateParams{}, false
	}

	match := addressPattern.FindStringSubmatch(address)
	if match == nil {
		return repository.CreateParams{}, false
	}
	postalCode := match[1]
	city := strings.TrimSpace(match[2])

	street, houseNumber := splitStreet(strings.TrimSpace(strings.Split(address, ",")[0]))
	if street == "" {
		return repository.CreateParams{}, false
	}

	params := repository.CreateParams{
		Name:           name,
		Category:       category,
		Street:         street,
		PostalCode:     postalCode,
		City:           city,
		SubmitterEmail: submitter,
	}
	if houseNumber != "" {
		params.HouseNumber = &houseNumber
	}
	if coord, ok := featureCoordinate(f); ok {
		params.Lat = &coord.Lat
		params.Lon = &coord.Lon
	}

	return params, true
}

// splitStreet separates a trailing house number ("Berger Str. 12" or
// "Berger Str. 12a") from the street name.
func splitStreet(line string) (string, string) {
	idx := strings.LastIndex(line, " ")
	if idx < 0 {
		return line, ""
	}

	tail := line[idx+1:]
	if len(tail) == 0 || tail[0] < '0' || tail[0] > '9' {
		return line, ""
	}

	return strings.TrimSpace(line[:idx]), tail
}

func featureCoordinate(f feature) (geo.Coordinate, bool) {
	if len(f.Geometry.Coordinates) != 2 {
		return geo.Coordinate{}, false
	}

	coord := geo.Coordinate{Lat: f.Geometry.Coordinates[1], Lon: f.Geometry.Coordinates[0]}
	if coord.Lat == 0 && coord.Lon == 0 {
		return geo.Coordinate{}, false
	}

	return coord, true
}
