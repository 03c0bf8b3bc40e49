// Package locations provides the map entries bounded context: visitor
// submissions, public listings, and admin moderation with OSM enrichment.
package locations

import (
	"zerowaste_map_backend/internal/events"
	apphttp "zerowaste_map_backend/internal/http"
	"zerowaste_map_backend/internal/locations/handler"
	"zerowaste_map_backend/internal/locations/repository"
	"zerowaste_map_backend/internal/locations/service"
	"zerowaste_map_backend/platform/logger"
	"zerowaste_map_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the locations bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the locations module with all its dependencies.
func NewModule(pool *pgxpool.Pool, enricher service.Enricher, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, enricher, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "locations"
}

// Service returns the service layer for external use (batch commands).
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts location routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public map surface
	group := ctx.V1.Group("/locations")
	group.GET("", m.handler.ListPublic)
	group.GET("/:id", m.handler.GetPublic)
	group.POST("", m.handler.Submit)

	// Moderation endpoints
	admin := ctx.Admin.Group("/locations")
	admin.GET("", m.handler.List)
	admin.GET("/:id", m.handler.Get)
	admin.PUT("/:id", m.handler.Update)
	admin.POST("/:id/approve", m.handler.Approve)
	admin.POST("/:id/reject", m.handler.Reject)
	admin.POST("/:id/enrich", m.handler.Enrich)
	admin.DELETE("/:id", m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
