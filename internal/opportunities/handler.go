package opportunities

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/churchserve/backend/internal/auth"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/pkg/response"
)

// MembershipChecker reports a user's role in an organization ("" when not a member).
type MembershipChecker interface {
	Role(ctx context.Context, orgID, userID uuid.UUID) (models.OrgRole, error)
}

// Handler handles opportunity HTTP endpoints.
type Handler struct {
	svc     *Service
	members MembershipChecker
	logger  *zap.Logger
}

// NewHandler creates an opportunities handler.
func NewHandler(svc *Service, members MembershipChecker, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, members: members, logger: logger}
}

// Create handles POST /opportunities. The caller must be a member of the target organization.
func (h *Handler) Create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BindError(c, err)
		return
	}
	callerID := auth.CallerID(c)
	if in.OrganizationID != uuid.Nil {
		role, err := h.members.Role(c.Request.Context(), in.OrganizationID, callerID)
		if err != nil {
			h.logger.Error("load member role failed", zap.Error(err))
			response.Internal(c, "failed to check permissions")
			return
		}
		if !role.Valid() {
			response.Forbidden(c, "only organization members can post opportunities")
			return
		}
	}
	o, err := h.svc.Create(c.Request.Context(), callerID, in)
	if err != nil {
		h.logger.Error("create opportunity failed", zap.Error(err))
		response.Error(c, err, "failed to create opportunity")
		return
	}
	response.Created(c, o)
}

// List handles GET /opportunities?organizationId=&category=&isActive=&limit=&offset=.
// snake_case parameter names are accepted as well.
func (h *Handler) List(c *gin.Context) {
	var f ListFilters
	if v := query(c, "organizationId", "organization_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "invalid organizationId")
			return
		}
		f.OrganizationID = &id
	}
	if v := query(c, "category"); v != "" {
		f.Category = &v
	}
	if v := query(c, "isActive", "is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			response.BadRequest(c, "invalid isActive")
			return
		}
		f.IsActive = &b
	}
	var err error
	if f.Limit, err = intQuery(c, "limit"); err != nil {
		response.BadRequest(c, "invalid limit")
		return
	}
	if f.Offset, err = intQuery(c, "offset"); err != nil {
		response.BadRequest(c, "invalid offset")
		return
	}
	list, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		h.logger.Error("list opportunities failed", zap.Error(err))
		response.Internal(c, "failed to fetch opportunities")
		return
	}
	response.OK(c, list)
}

// Get handles GET /opportunities/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid opportunity id")
		return
	}
	o, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("get opportunity failed", zap.Error(err), zap.String("opportunity_id", id.String()))
		response.Internal(c, "failed to fetch opportunity")
		return
	}
	if o == nil {
		response.NotFound(c, "opportunity not found")
		return
	}
	response.OK(c, o)
}

// Update handles PATCH /opportunities/:id (creator only).
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.requireCreator(c)
	if !ok {
		return
	}
	var p UpdateParams
	if err := c.ShouldBindJSON(&p); err != nil {
		response.BindError(c, err)
		return
	}
	o, err := h.svc.Update(c.Request.Context(), id, p)
	if err != nil {
		response.Error(c, err, "failed to update opportunity")
		return
	}
	response.OK(c, o)
}

// Delete handles DELETE /opportunities/:id (creator only).
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.requireCreator(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err, "failed to delete opportunity")
		return
	}
	response.OK(c, gin.H{"message": "opportunity deleted"})
}

// requireCreator loads the opportunity from :id and rejects callers other than its creator.
// A missing opportunity is reported as forbidden so existence is not leaked to non-creators.
func (h *Handler) requireCreator(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid opportunity id")
		return uuid.Nil, false
	}
	o, err := h.svc.Find(c.Request.Context(), id)
	if err != nil {
		response.Internal(c, "failed to fetch opportunity")
		return uuid.Nil, false
	}
	if o == nil || o.CreatedByID != auth.CallerID(c) {
		response.Forbidden(c, "only the creator can modify this opportunity")
		return uuid.Nil, false
	}
	return id, true
}

func query(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			return v
		}
	}
	return ""
}

func intQuery(c *gin.Context, key string) (int, error) {
	v := c.Query(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, strconv.ErrSyntax
	}
	return n, nil
}
