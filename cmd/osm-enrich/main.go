// Command osm-enrich backfills OpenStreetMap enrichment data for approved
// locations that have none yet, e.g. after an import or an upstream outage
// during moderation. The Nominatim rate limit applies, so large backfills
// take roughly one second per location.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"zerowaste_map_backend/internal/events"
	"zerowaste_map_backend/internal/geo"
	"zerowaste_map_backend/internal/locations/repository"
	"zerowaste_map_backend/internal/locations/service"
	"zerowaste_map_backend/platform/config"
	"zerowaste_map_backend/platform/db"
	"zerowaste_map_backend/platform/logger"
)

func main() {
	batchSize := flag.Int("batch", 25, "locations per batch")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting enrichment backfill", "batch", *batchSize)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	client := geo.NewClient(cfg, log)
	enricher := geo.NewEnricher(client, cfg, log)
	bus := events.NewInMemoryBus(log)
	svc := service.New(repository.New(pool), enricher, bus, log)

	total := 0
	for {
		enriched, err := svc.EnrichMissing(ctx, *batchSize)
		if err != nil {
			log.Error("backfill batch failed", "error", err)
			return
		}
		total += enriched

		// Failed records stay unenriched; a batch without progress would
		// loop over them forever.
		if enriched == 0 {
			log.Info("enrichment backfill finished", "totalEnriched", total)
			return
		}

		log.Info("backfill batch complete", "enriched", enriched, "totalEnriched", total)
	}
}
