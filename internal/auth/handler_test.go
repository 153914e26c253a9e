package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/churchserve/backend/internal/auth"
	"github.com/churchserve/backend/internal/domain"
	"github.com/churchserve/backend/internal/mocks"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/pkg/utils"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockUserStore, *auth.JWTService) {
	gin.SetMode(gin.TestMode)
	store := mocks.NewMockUserStore(gomock.NewController(t))
	jwtSvc := auth.NewJWTService("test-secret", 1)
	h := auth.NewHandler(store, jwtSvc, nil)
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	return r, store, jwtSvc
}

func post(r http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	r, store, jwtSvc := newTestRouter(t)
	userID := uuid.New()

	store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p auth.CreateUserParams) (*models.User, error) {
			assert.Equal(t, "ruth@example.com", p.Email)
			assert.True(t, utils.CheckPassword("secret1", p.PasswordHash))
			return &models.User{ID: userID, Email: p.Email, FirstName: p.FirstName, Skills: p.Skills}, nil
		})

	w := post(r, "/auth/register", map[string]interface{}{
		"email": "ruth@example.com", "password": "secret1", "first_name": "Ruth", "skills": []string{"cooking"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Data auth.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	claims, err := jwtSvc.Validate(body.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"cooking"}, body.Data.User.Skills)
}

func TestRegisterRejects(t *testing.T) {
	r, store, _ := newTestRouter(t)

	w := post(r, "/auth/register", map[string]string{"email": "ruth@example.com", "password": "123", "first_name": "Ruth"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"password"`)

	store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflict)
	w = post(r, "/auth/register", map[string]string{"email": "ruth@example.com", "password": "secret1", "first_name": "Ruth"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	r, store, _ := newTestRouter(t)
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)
	user := &models.User{ID: uuid.New(), Email: "ruth@example.com", Password: hash}

	store.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil).Times(2)
	w := post(r, "/auth/login", map[string]string{"email": user.Email, "password": "secret1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), hash)

	w = post(r, "/auth/login", map[string]string{"email": user.Email, "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	store.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.NotFound("user", nil))
	w = post(r, "/auth/login", map[string]string{"email": "nobody@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
