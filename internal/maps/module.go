// Package maps provides the HTTP surface for geocoding: address lookup for
// the submission form, reverse lookup for map clicks, opening-hours preview,
// and the admin enrichment endpoint.
package maps

import (
	"zerowaste_map_backend/internal/geo"
	apphttp "zerowaste_map_backend/internal/http"
	"zerowaste_map_backend/platform/logger"
)

// Module wires the maps HTTP routes.
type Module struct {
	handler *Handler
	service *Service
}

func NewModule(client *geo.Client, enricher *geo.Enricher, log *logger.Logger) *Module {
	svc := NewService(client, enricher, log)
	h := NewHandler(svc)
	return &Module{handler: h, service: svc}
}

func (m *Module) Name() string {
	return "maps"
}

// Service returns the service layer for external use.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/maps")
	group.GET("/address-lookup", m.handler.LookupAddress)
	group.GET("/reverse", m.handler.Reverse)
	group.GET("/opening-hours/preview", m.handler.PreviewHours)

	admin := ctx.Admin.Group("/maps")
	admin.GET("/enrich", m.handler.Enrich)
}

var _ apphttp.Module = (*Module)(nil)
