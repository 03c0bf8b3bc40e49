package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zerowaste_map_backend/platform/httpkit"
	"zerowaste_map_backend/platform/validator"
)

// Handler exposes the admin authentication endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// SignIn handles POST /api/v1/auth/sign-in
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.svc.SignIn(req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// Me handles GET /api/v1/admin/auth/me
func (h *Handler) Me(c *gin.Context) {
	email := c.GetString(httpkit.ContextAdminEmailKey)
	httpkit.OK(c, MeResponse{Email: email})
}
