package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/harryneopotter/hanger-on-server/internal/logger"
	"github.com/harryneopotter/hanger-on-server/internal/model"
	"github.com/harryneopotter/hanger-on-server/internal/service"
)

// AuthService defines identity operations used by the HTTP layer.
type AuthService interface {
	CreateUser(ctx context.Context, params service.CreateUserParams) (model.User, error)
	Login(ctx context.Context, params service.LoginParams) (model.User, model.Session, string, error)
	Logout(ctx context.Context, userID uuid.UUID, sessionToken string) error
	IssueVerificationToken(ctx context.Context, identifier string) (model.VerificationToken, error)
	ConsumeVerificationToken(ctx context.Context, identifier, token string) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// UserReader loads user profiles.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

// Auth handles HTTP endpoints for signup, login and verification tokens.
type Auth struct {
	authService    AuthService
	userStore      UserReader
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, userStore UserReader, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		userStore:      userStore,
		contextManager: contextManager,
		logger:         logger,
	}
}

type signupRequest struct {
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
	Image *string `json:"image,omitempty"`
}

type userResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          *string    `json:"name,omitempty"`
	Email         string     `json:"email"`
	EmailVerified *time.Time `json:"email_verified,omitempty"`
	Image         *string    `json:"image,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toUserResponse(u model.User) userResponse {
	return userResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Image:         u.Image,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// Signup creates a user. Duplicate emails get 409.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	user, err := h.authService.CreateUser(r.Context(), service.CreateUserParams{
		Email: req.Email,
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

type loginRequest struct {
	Email             string  `json:"email"`
	Name              *string `json:"name,omitempty"`
	Image             *string `json:"image,omitempty"`
	Type              string  `json:"type"`
	Provider          string  `json:"provider"`
	ProviderAccountID string  `json:"provider_account_id"`
	RefreshToken      *string `json:"refresh_token,omitempty"`
	AccessToken       *string `json:"access_token,omitempty"`
	ExpiresAt         *int64  `json:"expires_at,omitempty"`
	TokenType         *string `json:"token_type,omitempty"`
	Scope             *string `json:"scope,omitempty"`
	IDToken           *string `json:"id_token,omitempty"`
	SessionState      *string `json:"session_state,omitempty"`
}

type loginResponse struct {
	User         userResponse `json:"user"`
	SessionToken string       `json:"session_token"`
	AccessToken  string       `json:"access_token"`
	Expires      time.Time    `json:"expires"`
}

// Login signs a provider identity in, creating and linking the user on
// first sign-in.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Provider == "" || req.ProviderAccountID == "" {
		writeError(w, http.StatusBadRequest, "email, provider and provider_account_id are required")
		return
	}

	user, session, accessToken, err := h.authService.Login(r.Context(), service.LoginParams{
		Email: req.Email,
		Name:  req.Name,
		Image: req.Image,
		Account: service.LinkAccountParams{
			Type:              req.Type,
			Provider:          req.Provider,
			ProviderAccountID: req.ProviderAccountID,
			RefreshToken:      req.RefreshToken,
			AccessToken:       req.AccessToken,
			ExpiresAt:         req.ExpiresAt,
			TokenType:         req.TokenType,
			Scope:             req.Scope,
			IDToken:           req.IDToken,
			SessionState:      req.SessionState,
		},
	})
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"provider", req.Provider,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		User:         toUserResponse(user),
		SessionToken: session.SessionToken,
		AccessToken:  accessToken,
		Expires:      session.Expires,
	})
}

type logoutRequest struct {
	SessionToken string `json:"session_token"`
}

// Logout closes the caller's session. Idempotent.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req logoutRequest
	if err := decodeJSON(r, &req); err != nil || req.SessionToken == "" {
		writeError(w, http.StatusBadRequest, "session_token is required")
		return
	}

	if err := h.authService.Logout(r.Context(), userID, req.SessionToken); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type issueVerificationRequest struct {
	Identifier string `json:"identifier"`
}

type verificationResponse struct {
	Identifier string    `json:"identifier"`
	Token      string    `json:"token"`
	Expires    time.Time `json:"expires"`
}

// IssueVerification creates a verification token for an identifier.
// Delivering the token to its owner is the frontend's concern.
func (h *Auth) IssueVerification(w http.ResponseWriter, r *http.Request) {
	var req issueVerificationRequest
	if err := decodeJSON(r, &req); err != nil || req.Identifier == "" {
		writeError(w, http.StatusBadRequest, "identifier is required")
		return
	}

	token, err := h.authService.IssueVerificationToken(r.Context(), req.Identifier)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, verificationResponse{
		Identifier: token.Identifier,
		Token:      token.Token,
		Expires:    token.Expires,
	})
}

type consumeVerificationRequest struct {
	Identifier string `json:"identifier"`
	Token      string `json:"token"`
}

// ConsumeVerification redeems a verification token. Absent, consumed or
// expired tokens get 404.
func (h *Auth) ConsumeVerification(w http.ResponseWriter, r *http.Request) {
	var req consumeVerificationRequest
	if err := decodeJSON(r, &req); err != nil || req.Identifier == "" || req.Token == "" {
		writeError(w, http.StatusBadRequest, "identifier and token are required")
		return
	}

	if err := h.authService.ConsumeVerificationToken(r.Context(), req.Identifier, req.Token); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me returns the caller's profile.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// DeleteMe removes the caller's user and everything owned by it.
func (h *Auth) DeleteMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.authService.DeleteUser(r.Context(), userID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
