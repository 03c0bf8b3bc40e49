package maps

import (
	"net/http"

	"zerowaste_map_backend/internal/geo"
	"zerowaste_map_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the maps endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// LookupAddress handles GET /api/v1/maps/address-lookup?q=...
func (h *Handler) LookupAddress(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'q' is required (min 3 chars)", nil)
		return
	}

	results, err := h.svc.SearchAddress(c.Request.Context(), req.Query)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, results)
}

// Reverse handles GET /api/v1/maps/reverse?lat=...&lon=...
func (h *Handler) Reverse(c *gin.Context) {
	var req ReverseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "valid 'lat' and 'lon' are required", nil)
		return
	}

	address, err := h.svc.ReverseLookup(c.Request.Context(), geo.Coordinate{Lat: req.Lat, Lon: req.Lon})
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, address)
}

// Enrich handles GET /api/v1/admin/maps/enrich?name=...&lat=...&lon=...
func (h *Handler) Enrich(c *gin.Context) {
	var req EnrichRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'name' is required", nil)
		return
	}

	var ref *geo.Coordinate
	if req.Lat != nil && req.Lon != nil {
		ref = &geo.Coordinate{Lat: *req.Lat, Lon: *req.Lon}
	}

	result, err := h.svc.Enrich(c.Request.Context(), req.Name, ref)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// PreviewHours handles GET /api/v1/maps/opening-hours/preview?value=...
func (h *Handler) PreviewHours(c *gin.Context) {
	var req HoursPreviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'value' is required", nil)
		return
	}

	httpkit.OK(c, h.svc.PreviewHours(req.Value))
}
