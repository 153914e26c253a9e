package signups

import (
	"context"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/churchserve/backend/internal/auth"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/pkg/response"
)

// OpportunityFinder returns a bare opportunity, or nil when it does not exist.
type OpportunityFinder interface {
	Find(ctx context.Context, id uuid.UUID) (*models.Opportunity, error)
}

// Handler handles volunteer signup HTTP endpoints.
type Handler struct {
	svc           *Service
	opportunities OpportunityFinder
	logger        *zap.Logger
}

// NewHandler creates a signups handler.
func NewHandler(svc *Service, opportunities OpportunityFinder, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, opportunities: opportunities, logger: logger}
}

// SignUp handles POST /opportunities/:id/signup. The body is optional.
func (h *Handler) SignUp(c *gin.Context) {
	oppID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid opportunity id")
		return
	}
	var in SignUpInput
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		response.BindError(c, err)
		return
	}
	signup, err := h.svc.SignUp(c.Request.Context(), oppID, auth.CallerID(c), in)
	if err != nil {
		h.logger.Warn("signup failed", zap.Error(err), zap.String("opportunity_id", oppID.String()))
		response.Error(c, err, "failed to sign up for opportunity")
		return
	}
	response.Created(c, signup)
}

// ListForOpportunity handles GET /opportunities/:id/signups.
func (h *Handler) ListForOpportunity(c *gin.Context) {
	oppID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid opportunity id")
		return
	}
	list, err := h.svc.ListForOpportunity(c.Request.Context(), oppID)
	if err != nil {
		response.Internal(c, "failed to fetch signups")
		return
	}
	response.OK(c, list)
}

// ListMine handles GET /user/signups.
func (h *Handler) ListMine(c *gin.Context) {
	list, err := h.svc.ListForUser(c.Request.Context(), auth.CallerID(c))
	if err != nil {
		h.logger.Error("list user signups failed", zap.Error(err))
		response.Internal(c, "failed to fetch signups")
		return
	}
	response.OK(c, list)
}

// UpdateStatus handles PATCH /signups/:id. Allowed for the volunteer and the opportunity's creator.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid signup id")
		return
	}
	signup, ok := h.load(c, id)
	if !ok {
		return
	}
	if signup == nil {
		response.NotFound(c, "signup not found")
		return
	}
	if !h.mayModify(c, signup) {
		return
	}
	var in UpdateStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BindError(c, err)
		return
	}
	updated, err := h.svc.UpdateStatus(c.Request.Context(), id, in)
	if err != nil {
		response.Error(c, err, "failed to update signup")
		return
	}
	response.OK(c, updated)
}

// Cancel handles DELETE /signups/:id. Unknown ids succeed without effect.
func (h *Handler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid signup id")
		return
	}
	signup, ok := h.load(c, id)
	if !ok {
		return
	}
	if signup != nil && !h.mayModify(c, signup) {
		return
	}
	if err := h.svc.Cancel(c.Request.Context(), id); err != nil {
		h.logger.Error("cancel signup failed", zap.Error(err), zap.String("signup_id", id.String()))
		response.Error(c, err, "failed to cancel signup")
		return
	}
	response.OK(c, gin.H{"message": "signup cancelled"})
}

func (h *Handler) load(c *gin.Context, id uuid.UUID) (*models.VolunteerSignup, bool) {
	signup, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Internal(c, "failed to fetch signup")
		return nil, false
	}
	return signup, true
}

// mayModify allows the volunteer and the opportunity's creator.
func (h *Handler) mayModify(c *gin.Context, signup *models.VolunteerSignup) bool {
	callerID := auth.CallerID(c)
	if signup.UserID == callerID {
		return true
	}
	opp, err := h.opportunities.Find(c.Request.Context(), signup.OpportunityID)
	if err != nil {
		response.Internal(c, "failed to check permissions")
		return false
	}
	if opp != nil && opp.CreatedByID == callerID {
		return true
	}
	response.Forbidden(c, "not allowed to modify this signup")
	return false
}
