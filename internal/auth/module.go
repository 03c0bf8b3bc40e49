// Package auth provides admin authentication for the moderation endpoints.
// A single administrator account is configured via the environment.
package auth

import (
	apphttp "zerowaste_map_backend/internal/http"
	"zerowaste_map_backend/platform/logger"
	"zerowaste_map_backend/platform/validator"
)

// Module wires the auth HTTP routes.
type Module struct {
	handler *Handler
	service *Service
}

func NewModule(cfg ServiceConfig, log *logger.Logger, val *validator.Validator) *Module {
	svc := NewService(cfg, log)
	h := NewHandler(svc, val)
	return &Module{handler: h, service: svc}
}

func (m *Module) Name() string {
	return "auth"
}

// Service returns the service layer for external use.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/auth")
	group.POST("/sign-in", ctx.AuthRateLimiter.RateLimit(), m.handler.SignIn)

	admin := ctx.Admin.Group("/auth")
	admin.GET("/me", m.handler.Me)
}

var _ apphttp.Module = (*Module)(nil)
