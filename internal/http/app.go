package http

import (
	"context"

	"zerowaste_map_backend/internal/events"
	"zerowaste_map_backend/platform/config"
	"zerowaste_map_backend/platform/logger"
)

// RouterConfig is the slice of configuration the router itself reads.
type RouterConfig interface {
	config.HTTPConfig
	config.JWTConfig
}

// HealthChecker backs the readiness endpoint; the DB pool satisfies it.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App is assembled by the composition root and handed to router.New. It is
// the only thing the router needs to build the full engine.
type App struct {
	Config   RouterConfig
	Logger   *logger.Logger
	Health   HealthChecker
	EventBus events.Bus
	// Modules are mounted in order; registration is logged per module.
	Modules []Module
}
