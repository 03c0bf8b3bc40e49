// Package http defines the contract between the router and the domain
// modules that mount routes on it.
package http

import (
	"zerowaste_map_backend/platform/config"
	"zerowaste_map_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Module is implemented by each bounded context (maps, locations, auth) so
// the router can mount it without knowing its endpoints.
type Module interface {
	// Name identifies the module in startup logs.
	Name() string
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext carries the shared groups and middleware a module needs when
// registering its routes.
type RouterContext struct {
	Engine *gin.Engine
	// V1 is the public /api/v1 group.
	V1 *gin.RouterGroup
	// Admin is the JWT-guarded /api/v1/admin group.
	Admin *gin.RouterGroup
	// Config exposes only the JWT settings; modules get no wider config.
	Config config.JWTConfig
	// AuthMiddleware guards any extra admin routes a module mounts outside
	// the Admin group.
	AuthMiddleware gin.HandlerFunc
	// AuthRateLimiter is the stricter per-IP limiter for credential routes.
	AuthRateLimiter *httpkit.AuthRateLimiter
}
