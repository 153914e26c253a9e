package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/churchserve/backend/internal/domain"
	"github.com/churchserve/backend/internal/models"
	"github.com/churchserve/backend/pkg/response"
	"github.com/churchserve/backend/pkg/utils"
)

//go:generate mockgen -source=handler.go -destination=../mocks/mock_user_store.go -package=mocks -mock_names UserStore=MockUserStore

// UserStore is the persistence surface the auth handler needs.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, p CreateUserParams) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, p ProfileUpdate) (*models.User, error)
}

// ContextUserID is the key for the caller's user ID in gin context.
const ContextUserID = "user_id"

// ContextUserEmail is the key for the caller's email in gin context.
const ContextUserEmail = "user_email"

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=6"`
	FirstName string   `json:"first_name" binding:"required,max=100"`
	LastName  string   `json:"last_name" binding:"max=100"`
	Location  string   `json:"location" binding:"max=255"`
	Skills    []string `json:"skills" binding:"omitempty,dive,min=1,max=100"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is the auth response with JWT.
type TokenResponse struct {
	Token string            `json:"token"`
	User  models.UserPublic `json:"user"`
}

// Handler handles auth HTTP endpoints.
type Handler struct {
	repo   UserStore
	jwt    *JWTService
	logger *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(repo UserStore, jwt *JWTService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, jwt: jwt, logger: logger}
}

// CallerID returns the authenticated user's ID set by the JWT middleware.
func CallerID(c *gin.Context) uuid.UUID {
	return c.MustGet(ContextUserID).(uuid.UUID)
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Internal(c, "failed to hash password")
		return
	}

	user, err := h.repo.Create(c.Request.Context(), CreateUserParams{
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Location:     strings.TrimSpace(req.Location),
		Skills:       req.Skills,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			response.Conflict(c, "email already registered")
			return
		}
		h.logger.Error("create user failed", zap.Error(err))
		response.Internal(c, "failed to create user")
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email)
	if err != nil {
		response.Internal(c, "failed to generate token")
		return
	}
	response.Created(c, TokenResponse{Token: token, User: user.ToPublic()})
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	user, err := h.repo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.logger.Error("lookup user failed", zap.Error(err))
		}
		response.Unauthorized(c, "invalid email or password")
		return
	}
	if !utils.CheckPassword(req.Password, user.Password) {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	token, err := h.jwt.Generate(user.ID, user.Email)
	if err != nil {
		response.Internal(c, "failed to generate token")
		return
	}
	response.OK(c, TokenResponse{Token: token, User: user.ToPublic()})
}

// Me handles GET /auth/user.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.repo.GetByID(c.Request.Context(), CallerID(c))
	if err != nil {
		response.Error(c, err, "failed to fetch user")
		return
	}
	response.OK(c, user.ToPublic())
}

// UpdateMe handles PATCH /auth/user.
func (h *Handler) UpdateMe(c *gin.Context) {
	var req ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	if err := domain.Validate(req); err != nil {
		response.Error(c, err, "invalid request")
		return
	}
	user, err := h.repo.UpdateProfile(c.Request.Context(), CallerID(c), req)
	if err != nil {
		h.logger.Error("update profile failed", zap.Error(err))
		response.Error(c, err, "failed to update profile")
		return
	}
	response.OK(c, user.ToPublic())
}
