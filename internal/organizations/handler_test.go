package organizations_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/churchserve/backend/internal/auth"
	"github.com/churchserve/backend/internal/mocks"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/internal/organizations"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeLogos struct {
	uploaded map[string]bool
	deleted  []string
}

func (f *fakeLogos) PresignLogoUpload(_ context.Context, key, _ string) (string, error) {
	return "https://s3.test/put/" + key, nil
}

func (f *fakeLogos) PresignLogoDownload(_ context.Context, key string) (string, error) {
	return "https://s3.test/get/" + key, nil
}

func (f *fakeLogos) UploadLogo(_ context.Context, key, _ string, _ io.Reader, _ int64) (string, error) {
	return "https://s3.test/" + key, nil
}

func (f *fakeLogos) LogoExists(_ context.Context, key string) (bool, error) {
	return f.uploaded[key], nil
}

func (f *fakeLogos) DeleteLogo(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func newRouter(h *organizations.Handler, caller uuid.UUID) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(auth.ContextUserID, caller)
		c.Next()
	})
	r.POST("/organizations", h.Create)
	r.GET("/organizations/:id", h.Get)
	r.PATCH("/organizations/:id", h.Update)
	r.POST("/organizations/:id/members", h.AddMember)
	r.DELETE("/organizations/:id/members/:userId", h.RemoveMember)
	r.POST("/organizations/:id/logo/upload-url", h.LogoUploadURL)
	r.POST("/organizations/:id/logo/confirm", h.ConfirmLogo)
	r.GET("/organizations/:id/logo/url", h.LogoURL)
	return r
}

func do(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandlerGetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockOrganizationStore(ctrl)
	h := organizations.NewHandler(organizations.NewService(store, mocks.NewMockOpportunityLister(ctrl), nil), nil, nil)

	store.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	w := do(newRouter(h, uuid.New()), http.MethodGet, "/organizations/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(newRouter(h, uuid.New()), http.MethodGet, "/organizations/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockOrganizationStore(ctrl)
	h := organizations.NewHandler(organizations.NewService(store, mocks.NewMockOpportunityLister(ctrl), nil), nil, nil)
	caller := uuid.New()

	store.EXPECT().CreateWithOwner(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, org *models.Organization) (*models.OrganizationMember, error) {
			org.ID = uuid.New()
			return &models.OrganizationMember{}, nil
		})

	w := do(newRouter(h, caller), http.MethodPost, "/organizations", validInput())
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Data models.Organization `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, caller, body.Data.OwnerID)

	w = do(newRouter(h, caller), http.MethodPost, "/organizations", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerUpdateRequiresOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockOrganizationStore(ctrl)
	h := organizations.NewHandler(organizations.NewService(store, mocks.NewMockOpportunityLister(ctrl), nil), nil, nil)
	orgID, caller := uuid.New(), uuid.New()

	store.EXPECT().GetMemberRole(gomock.Any(), orgID, caller).Return(models.OrgRoleAdmin, nil)

	w := do(newRouter(h, caller), http.MethodPatch, "/organizations/"+orgID.String(), map[string]string{"name": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandlerMemberManagement(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockOrganizationStore(ctrl)
	h := organizations.NewHandler(organizations.NewService(store, mocks.NewMockOpportunityLister(ctrl), nil), nil, nil)
	orgID, caller, target := uuid.New(), uuid.New(), uuid.New()
	r := newRouter(h, caller)

	store.EXPECT().GetMemberRole(gomock.Any(), orgID, caller).Return(models.OrgRoleMember, nil)
	w := do(r, http.MethodPost, "/organizations/"+orgID.String()+"/members", map[string]string{"user_id": target.String(), "role": "member"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	store.EXPECT().GetMemberRole(gomock.Any(), orgID, caller).Return(models.OrgRoleOwner, nil)
	store.EXPECT().AddMember(gomock.Any(), orgID, target, models.OrgRoleMember).
		Return(&models.OrganizationMember{OrganizationID: orgID, UserID: target, Role: models.OrgRoleMember}, nil)
	w = do(r, http.MethodPost, "/organizations/"+orgID.String()+"/members", map[string]string{"user_id": target.String(), "role": "member"})
	assert.Equal(t, http.StatusCreated, w.Code)

	store.EXPECT().GetMemberRole(gomock.Any(), orgID, caller).Return(models.OrgRoleAdmin, nil)
	store.EXPECT().RemoveMember(gomock.Any(), orgID, target).Return(nil)
	w = do(r, http.MethodDelete, "/organizations/"+orgID.String()+"/members/"+target.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandlerLogoDisabledWithoutStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := organizations.NewHandler(organizations.NewService(mocks.NewMockOrganizationStore(ctrl), mocks.NewMockOpportunityLister(ctrl), nil), nil, nil)

	w := do(newRouter(h, uuid.New()), http.MethodPost, "/organizations/"+uuid.NewString()+"/logo/upload-url", map[string]string{"filename": "logo.png"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandlerLogoUploadURLKeepsCurrentLogo(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockOrganizationStore(ctrl)
	logos := &fakeLogos{}
	h := organizations.NewHandler(organizations.NewService(store, mocks.NewMockOpportunityLister(ctrl), nil), logos, nil)
	orgID, caller := uuid.New(), uuid.New()
	r := newRouter(h, caller)

	store.EXPECT().GetMemberRole(gomock.Any(), orgID, caller).Return(models.OrgRoleOwner, nil)
	store.EXPECT().SetLogoKey(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := do(r, http.MethodPost, "/organizations/"+orgID.String()+"/logo/upload-url", map[string]string{"filename": "logo.png"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, logos.deleted)

	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "image/png", body.Data["content_type"])
	assert.Contains(t, body.Data["upload_url"], "logos/"+orgID.String()+"/")

	store.EXPECT().GetMemberRole(gomock.Any(), orgID, caller).Return(models.OrgRoleOwner, nil)
	w = do(r, http.MethodPost, "/organizations/"+orgID.String()+"/logo/upload-url", map[string]string{"filename": "logo.exe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerConfirmLogo(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockOrganizationStore(ctrl)
	orgID, caller := uuid.New(), uuid.New()
	key := "logos/" + orgID.String() + "/new.png"
	logos := &fakeLogos{uploaded: map[string]bool{key: true}}
	h := organizations.NewHandler(organizations.NewService(store, mocks.NewMockOpportunityLister(ctrl), nil), logos, nil)
	r := newRouter(h, caller)
	path := "/organizations/" + orgID.String() + "/logo/confirm"
	store.EXPECT().GetMemberRole(gomock.Any(), orgID, caller).Return(models.OrgRoleAdmin, nil).Times(3)

	w := do(r, http.MethodPost, path, map[string]string{"key": "logos/" + orgID.String() + "/missing.png"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "object not uploaded yet")

	w = do(r, http.MethodPost, path, map[string]string{"key": "logos/" + uuid.NewString() + "/new.png"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "key of another organization")

	store.EXPECT().SetLogoKey(gomock.Any(), orgID, key).Return("logos/old.png", nil)
	w = do(r, http.MethodPost, path, map[string]string{"key": key})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"logos/old.png"}, logos.deleted)
}

func TestHandlerLogoURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockOrganizationStore(ctrl)
	h := organizations.NewHandler(organizations.NewService(store, mocks.NewMockOpportunityLister(ctrl), nil), &fakeLogos{}, nil)
	orgID := uuid.New()
	r := newRouter(h, uuid.New())

	store.EXPECT().GetByID(gomock.Any(), orgID).Return(&models.Organization{ID: orgID}, nil)
	w := do(r, http.MethodGet, "/organizations/"+orgID.String()+"/logo/url", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	store.EXPECT().GetByID(gomock.Any(), orgID).Return(&models.Organization{ID: orgID, LogoKey: "logos/a.png"}, nil)
	w = do(r, http.MethodGet, "/organizations/"+orgID.String()+"/logo/url", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://s3.test/get/logos/a.png")
}
