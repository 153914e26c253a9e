package stats

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/churchserve/backend/internal/auth"
	"github.com/churchserve/backend/pkg/response"
)

// Handler serves dashboard statistics.
type Handler struct {
	svc    *Service
	logger *zap.Logger
}

// NewHandler creates a stats handler.
func NewHandler(svc *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger}
}

// Volunteer handles GET /user/stats.
func (h *Handler) Volunteer(c *gin.Context) {
	st, err := h.svc.VolunteerStats(c.Request.Context(), auth.CallerID(c))
	if err != nil {
		h.logger.Error("volunteer stats failed", zap.Error(err))
		response.Internal(c, "failed to fetch stats")
		return
	}
	response.OK(c, st)
}

// Organization handles GET /organizations/:id/stats.
func (h *Handler) Organization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid organization id")
		return
	}
	st, err := h.svc.OrganizationStats(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("organization stats failed", zap.Error(err), zap.String("organization_id", id.String()))
		response.Internal(c, "failed to fetch stats")
		return
	}
	response.OK(c, st)
}
