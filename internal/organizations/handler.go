package organizations

import (
	"context"
	"io"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/churchserve/backend/internal/auth"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/pkg/response"
	"github.com/churchserve/backend/pkg/storage"
)

// LogoStore stores organization logos. *storage.S3 implements it.
type LogoStore interface {
	PresignLogoUpload(ctx context.Context, key, contentType string) (string, error)
	PresignLogoDownload(ctx context.Context, key string) (string, error)
	UploadLogo(ctx context.Context, key, contentType string, body io.Reader, contentLength int64) (string, error)
	LogoExists(ctx context.Context, key string) (bool, error)
	DeleteLogo(ctx context.Context, key string) error
}

// Handler handles organization HTTP endpoints.
type Handler struct {
	svc    *Service
	logos  LogoStore
	logger *zap.Logger
}

// NewHandler creates an organizations handler. logos may be nil when S3 is not configured.
func NewHandler(svc *Service, logos LogoStore, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logos: logos, logger: logger}
}

// MemberRequest is the body for POST /organizations/:id/members.
type MemberRequest struct {
	UserID string         `json:"user_id" binding:"required,uuid"`
	Role   models.OrgRole `json:"role" binding:"required"`
}

// RoleRequest is the body for PATCH /organizations/:id/members/:userId.
type RoleRequest struct {
	Role models.OrgRole `json:"role" binding:"required"`
}

// LogoUploadURLRequest is the body for POST /organizations/:id/logo/upload-url.
type LogoUploadURLRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type"`
}

// LogoConfirmRequest is the body for POST /organizations/:id/logo/confirm.
type LogoConfirmRequest struct {
	Key string `json:"key" binding:"required"`
}

func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// authorize checks the caller's role in the organization with allow. It writes the error response itself.
func (h *Handler) authorize(c *gin.Context, orgID uuid.UUID, allow func(models.OrgRole) bool) bool {
	role, err := h.svc.Role(c.Request.Context(), orgID, auth.CallerID(c))
	if err != nil {
		h.logger.Error("load member role failed", zap.Error(err), zap.String("organization_id", orgID.String()))
		response.Internal(c, "failed to check permissions")
		return false
	}
	if !allow(role) {
		response.Forbidden(c, "not authorized for this organization")
		return false
	}
	return true
}

func isOwner(r models.OrgRole) bool  { return r == models.OrgRoleOwner }
func isMember(r models.OrgRole) bool { return r.Valid() }

// Create handles POST /organizations. The caller becomes the owner.
func (h *Handler) Create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BindError(c, err)
		return
	}
	org, err := h.svc.Create(c.Request.Context(), auth.CallerID(c), in)
	if err != nil {
		h.logger.Error("create organization failed", zap.Error(err))
		response.Error(c, err, "failed to create organization")
		return
	}
	response.Created(c, org)
}

// Get handles GET /organizations/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	org, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("get organization failed", zap.Error(err), zap.String("organization_id", id.String()))
		response.Internal(c, "failed to fetch organization")
		return
	}
	if org == nil {
		response.NotFound(c, "organization not found")
		return
	}
	response.OK(c, org)
}

// ListMine handles GET /organizations/my.
func (h *Handler) ListMine(c *gin.Context) {
	list, err := h.svc.ListForUser(c.Request.Context(), auth.CallerID(c))
	if err != nil {
		response.Internal(c, "failed to load organizations")
		return
	}
	response.OK(c, list)
}

// ListOwned handles GET /organizations/owned.
func (h *Handler) ListOwned(c *gin.Context) {
	list, err := h.svc.ListByOwner(c.Request.Context(), auth.CallerID(c))
	if err != nil {
		response.Internal(c, "failed to load organizations")
		return
	}
	response.OK(c, list)
}

// Update handles PATCH /organizations/:id (owner only).
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok || !h.authorize(c, id, isOwner) {
		return
	}
	var p UpdateParams
	if err := c.ShouldBindJSON(&p); err != nil {
		response.BindError(c, err)
		return
	}
	org, err := h.svc.Update(c.Request.Context(), id, p)
	if err != nil {
		response.Error(c, err, "failed to update organization")
		return
	}
	response.OK(c, org)
}

// ListMembers handles GET /organizations/:id/members (members only).
func (h *Handler) ListMembers(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok || !h.authorize(c, id, isMember) {
		return
	}
	members, err := h.svc.ListMembers(c.Request.Context(), id)
	if err != nil {
		response.Internal(c, "failed to load members")
		return
	}
	response.OK(c, members)
}

// AddMember handles POST /organizations/:id/members (owner or admin).
func (h *Handler) AddMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok || !h.authorize(c, id, models.OrgRole.CanManage) {
		return
	}
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	userID := uuid.MustParse(req.UserID)
	m, err := h.svc.AddMember(c.Request.Context(), id, userID, req.Role)
	if err != nil {
		response.Error(c, err, "failed to add member")
		return
	}
	response.Created(c, m)
}

// UpdateMemberRole handles PATCH /organizations/:id/members/:userId (owner or admin).
func (h *Handler) UpdateMemberRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok || !h.authorize(c, id, models.OrgRole.CanManage) {
		return
	}
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := h.svc.UpdateMemberRole(c.Request.Context(), id, userID, req.Role); err != nil {
		response.Error(c, err, "failed to update member")
		return
	}
	response.NoContent(c)
}

// RemoveMember handles DELETE /organizations/:id/members/:userId (owner or admin).
func (h *Handler) RemoveMember(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok || !h.authorize(c, id, models.OrgRole.CanManage) {
		return
	}
	if err := h.svc.RemoveMember(c.Request.Context(), id, userID); err != nil {
		response.Error(c, err, "failed to remove member")
		return
	}
	response.NoContent(c)
}

// LogoUploadURL handles POST /organizations/:id/logo/upload-url. Returns a presigned PUT URL.
// The key becomes the organization's logo only once the upload is confirmed.
func (h *Handler) LogoUploadURL(c *gin.Context) {
	if h.logos == nil {
		response.ServiceUnavailable(c, "logo storage is not configured")
		return
	}
	id, ok := parseID(c, "id")
	if !ok || !h.authorize(c, id, models.OrgRole.CanManage) {
		return
	}
	var req LogoUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if !storage.ValidateLogoFileType(req.ContentType, req.Filename) {
		response.BadRequest(c, "unsupported logo file type")
		return
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = storage.ContentTypeForFilename(req.Filename)
	}
	key := storage.LogoKey(id.String(), uuid.NewString()+path.Ext(req.Filename))
	url, err := h.logos.PresignLogoUpload(c.Request.Context(), key, contentType)
	if err != nil {
		h.logger.Error("presign logo upload failed", zap.Error(err))
		response.Internal(c, "failed to create upload url")
		return
	}
	response.OK(c, gin.H{"upload_url": url, "key": key, "content_type": contentType})
}

// ConfirmLogo handles POST /organizations/:id/logo/confirm after a presigned upload completes.
func (h *Handler) ConfirmLogo(c *gin.Context) {
	if h.logos == nil {
		response.ServiceUnavailable(c, "logo storage is not configured")
		return
	}
	id, ok := parseID(c, "id")
	if !ok || !h.authorize(c, id, models.OrgRole.CanManage) {
		return
	}
	var req LogoConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if req.Key != storage.LogoKey(id.String(), path.Base(req.Key)) {
		response.BadRequest(c, "key does not belong to this organization")
		return
	}
	exists, err := h.logos.LogoExists(c.Request.Context(), req.Key)
	if err != nil {
		h.logger.Error("check logo upload failed", zap.Error(err), zap.String("key", req.Key))
		response.Internal(c, "failed to check logo upload")
		return
	}
	if !exists {
		response.BadRequest(c, "logo has not been uploaded")
		return
	}
	h.replaceLogo(c, id, req.Key)
	if c.IsAborted() {
		return
	}
	response.OK(c, gin.H{"key": req.Key})
}

// UploadLogo handles POST /organizations/:id/logo (multipart form field "file").
func (h *Handler) UploadLogo(c *gin.Context) {
	if h.logos == nil {
		response.ServiceUnavailable(c, "logo storage is not configured")
		return
	}
	id, ok := parseID(c, "id")
	if !ok || !h.authorize(c, id, models.OrgRole.CanManage) {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, storage.MaxLogoFileSize+1024*1024)
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fh.Size > storage.MaxLogoFileSize {
		response.BadRequest(c, "logo exceeds maximum size")
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if !storage.ValidateLogoFileType(contentType, fh.Filename) {
		response.BadRequest(c, "unsupported logo file type")
		return
	}
	if contentType == "" {
		contentType = storage.ContentTypeForFilename(fh.Filename)
	}
	f, err := fh.Open()
	if err != nil {
		response.BadRequest(c, "unreadable file")
		return
	}
	defer f.Close()

	key := storage.LogoKey(id.String(), uuid.NewString()+path.Ext(fh.Filename))
	url, err := h.logos.UploadLogo(c.Request.Context(), key, contentType, f, fh.Size)
	if err != nil {
		h.logger.Error("logo upload failed", zap.Error(err), zap.String("organization_id", id.String()))
		response.Internal(c, "failed to upload logo")
		return
	}
	h.replaceLogo(c, id, key)
	if c.IsAborted() {
		return
	}
	response.OK(c, gin.H{"url": url, "key": key})
}

// LogoURL handles GET /organizations/:id/logo/url.
func (h *Handler) LogoURL(c *gin.Context) {
	if h.logos == nil {
		response.ServiceUnavailable(c, "logo storage is not configured")
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	key, err := h.svc.LogoKey(c.Request.Context(), id)
	if err != nil {
		response.Internal(c, "failed to fetch organization")
		return
	}
	if key == "" {
		response.NotFound(c, "logo not found")
		return
	}
	url, err := h.logos.PresignLogoDownload(c.Request.Context(), key)
	if err != nil {
		response.Internal(c, "failed to create download url")
		return
	}
	response.OK(c, gin.H{"url": url})
}

func (h *Handler) replaceLogo(c *gin.Context, id uuid.UUID, key string) {
	prev, err := h.svc.ReplaceLogo(c.Request.Context(), id, key)
	if err != nil {
		response.Error(c, err, "failed to save logo")
		c.Abort()
		return
	}
	if prev != "" && prev != key {
		if err := h.logos.DeleteLogo(c.Request.Context(), prev); err != nil {
			h.logger.Warn("delete previous logo failed", zap.Error(err), zap.String("key", prev))
		}
	}
}
