package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harryneopotter/hanger-on-server/internal/logger"
	"github.com/harryneopotter/hanger-on-server/internal/model"
)

// Auth implements identity operations: users, provider accounts, sessions
// and verification tokens.
type Auth struct {
	userStore         model.UserStore
	accountStore      model.AccountStore
	sessionStore      model.SessionStore
	verificationStore model.VerificationTokenStore
	garmentStore      model.GarmentStore
	storage           model.Storage
	tokenManager      model.TokenManager
	logger            *logger.Logger

	sessionTTL           time.Duration
	verificationTokenTTL time.Duration
}

// AuthConfig carries the time bounds for sessions and verification tokens.
type AuthConfig struct {
	SessionTTL           time.Duration
	VerificationTokenTTL time.Duration
}

func NewAuth(
	userStore model.UserStore,
	accountStore model.AccountStore,
	sessionStore model.SessionStore,
	verificationStore model.VerificationTokenStore,
	garmentStore model.GarmentStore,
	storage model.Storage,
	tokenManager model.TokenManager,
	logger *logger.Logger,
	cfg AuthConfig,
) *Auth {
	return &Auth{
		userStore:            userStore,
		accountStore:         accountStore,
		sessionStore:         sessionStore,
		verificationStore:    verificationStore,
		garmentStore:         garmentStore,
		storage:              storage,
		tokenManager:         tokenManager,
		logger:               logger,
		sessionTTL:           cfg.SessionTTL,
		verificationTokenTTL: cfg.VerificationTokenTTL,
	}
}

// CreateUserParams contains parameters to create a user.
type CreateUserParams struct {
	Email string
	Name  *string
	Image *string
}

// CreateUser creates a user. Returns model.ErrAlreadyExists when the email
// is taken.
func (a *Auth) CreateUser(ctx context.Context, params CreateUserParams) (model.User, error) {
	now := time.Now()
	user := model.User{
		ID:        uuid.New(),
		Name:      params.Name,
		Email:     params.Email,
		Image:     params.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			a.logger.Info("Auth service: email already taken",
				"email", params.Email)
			return model.User{}, err
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user created",
		"user_id", saved.ID,
		"email", saved.Email)

	return saved, nil
}

// LinkAccountParams contains parameters to link a provider account.
type LinkAccountParams struct {
	UserID            uuid.UUID
	Type              string
	Provider          string
	ProviderAccountID string
	RefreshToken      *string
	AccessToken       *string
	ExpiresAt         *int64
	TokenType         *string
	Scope             *string
	IDToken           *string
	SessionState      *string
}

// LinkAccount attaches an external provider identity to a user. Returns
// model.ErrAlreadyExists when the (provider, providerAccountID) pair is
// already linked, model.ErrForeignKey when the user does not exist.
func (a *Auth) LinkAccount(ctx context.Context, params LinkAccountParams) (model.Account, error) {
	account := model.Account{
		ID:                uuid.New(),
		UserID:            params.UserID,
		Type:              params.Type,
		Provider:          params.Provider,
		ProviderAccountID: params.ProviderAccountID,
		RefreshToken:      params.RefreshToken,
		AccessToken:       params.AccessToken,
		ExpiresAt:         params.ExpiresAt,
		TokenType:         params.TokenType,
		Scope:             params.Scope,
		IDToken:           params.IDToken,
		SessionState:      params.SessionState,
	}

	saved, err := a.accountStore.Create(ctx, account)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) || errors.Is(err, model.ErrForeignKey) {
			return model.Account{}, err
		}
		a.logger.Error("Auth service: failed to link account",
			"user_id", params.UserID,
			"provider", params.Provider,
			"error", err.Error())
		return model.Account{}, fmt.Errorf("failed to link account: %w", err)
	}

	a.logger.Info("Auth service: account linked",
		"user_id", saved.UserID,
		"provider", saved.Provider)

	return saved, nil
}

// LoginParams contains parameters for a provider sign-in.
type LoginParams struct {
	Email   string
	Name    *string
	Image   *string
	Account LinkAccountParams
}

// Login resolves the provider identity to a user, creating and linking the
// user on first sign-in, and opens a session.
func (a *Auth) Login(ctx context.Context, params LoginParams) (model.User, model.Session, string, error) {
	var user model.User

	account, err := a.accountStore.GetByProvider(ctx, params.Account.Provider, params.Account.ProviderAccountID)
	switch {
	case err == nil:
		user, err = a.userStore.GetByID(ctx, account.UserID)
		if err != nil {
			return model.User{}, model.Session{}, "", fmt.Errorf("failed to get user for account: %w", err)
		}
	case errors.Is(err, model.ErrNotFound):
		user, err = a.firstLogin(ctx, params)
		if err != nil {
			return model.User{}, model.Session{}, "", err
		}
	default:
		return model.User{}, model.Session{}, "", fmt.Errorf("failed to get account by provider: %w", err)
	}

	session, accessToken, err := a.CreateSession(ctx, user.ID)
	if err != nil {
		return model.User{}, model.Session{}, "", err
	}

	return user, session, accessToken, nil
}

// firstLogin finds or creates the user for a not-yet-linked provider
// identity and links the account. A concurrent first login of the same
// identity is resolved by falling back to the winner's link.
func (a *Auth) firstLogin(ctx context.Context, params LoginParams) (model.User, error) {
	user, err := a.userStore.GetByEmail(ctx, params.Email)
	if errors.Is(err, model.ErrNotFound) {
		user, err = a.CreateUser(ctx, CreateUserParams{
			Email: params.Email,
			Name:  params.Name,
			Image: params.Image,
		})
		if errors.Is(err, model.ErrAlreadyExists) {
			user, err = a.userStore.GetByEmail(ctx, params.Email)
		}
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to resolve user for login: %w", err)
	}

	accountParams := params.Account
	accountParams.UserID = user.ID
	if _, err := a.LinkAccount(ctx, accountParams); err != nil && !errors.Is(err, model.ErrAlreadyExists) {
		return model.User{}, fmt.Errorf("failed to link account on first login: %w", err)
	}

	return user, nil
}

// CreateSession opens a session for the user with a freshly generated
// unique token and returns it together with a signed access token.
func (a *Auth) CreateSession(ctx context.Context, userID uuid.UUID) (model.Session, string, error) {
	if _, err := a.userStore.GetByID(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Session{}, "", err
		}
		return model.Session{}, "", fmt.Errorf("failed to get user by id: %w", err)
	}

	sessionToken, err := generateSessionToken()
	if err != nil {
		return model.Session{}, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	session := model.Session{
		ID:           uuid.New(),
		SessionToken: sessionToken,
		UserID:       userID,
		Expires:      time.Now().Add(a.sessionTTL),
	}

	saved, err := a.sessionStore.Create(ctx, session)
	if err != nil {
		a.logger.Error("Auth service: failed to create session",
			"user_id", userID,
			"error", err.Error())
		return model.Session{}, "", fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := a.tokenManager.GenerateAccessToken(saved.UserID, saved.ID)
	if err != nil {
		return model.Session{}, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	a.logger.Info("Auth service: session created",
		"user_id", saved.UserID,
		"session_id", saved.ID,
		"expires", saved.Expires)

	return saved, accessToken, nil
}

// Authenticate verifies an access token against its backing session.
// A valid signature is not enough, the session row must still exist and be
// unexpired.
func (a *Auth) Authenticate(ctx context.Context, accessToken string) (model.AccessClaims, error) {
	claims, err := a.tokenManager.ValidateAccessToken(accessToken)
	if err != nil {
		return model.AccessClaims{}, fmt.Errorf("failed to validate access token: %w", err)
	}

	session, err := a.sessionStore.GetByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.AccessClaims{}, model.ErrNotFound
		}
		return model.AccessClaims{}, fmt.Errorf("failed to get session: %w", err)
	}

	if session.Expired(time.Now()) || session.UserID != claims.UserID {
		return model.AccessClaims{}, model.ErrNotFound
	}

	return claims, nil
}

// Logout deletes the user's session. Logging out an absent session, or a
// token belonging to someone else, is a no-op.
func (a *Auth) Logout(ctx context.Context, userID uuid.UUID, sessionToken string) error {
	session, err := a.sessionStore.GetByToken(ctx, sessionToken)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get session by token: %w", err)
	}
	if session.UserID != userID {
		return nil
	}

	err = a.sessionStore.DeleteByToken(ctx, sessionToken)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// SweepSessions removes expired sessions and reports how many were removed.
// Intended for a periodic caller, the data layer never expires rows itself.
func (a *Auth) SweepSessions(ctx context.Context, now time.Time) (int64, error) {
	swept, err := a.sessionStore.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	if swept > 0 {
		a.logger.Info("Auth service: swept expired sessions", "count", swept)
	}
	return swept, nil
}

// IssueVerificationToken creates a single-use verification token for an
// identifier (typically an email address, before any user row exists).
func (a *Auth) IssueVerificationToken(ctx context.Context, identifier string) (model.VerificationToken, error) {
	tokenValue, err := generateSessionToken()
	if err != nil {
		return model.VerificationToken{}, fmt.Errorf("failed to generate verification token: %w", err)
	}

	token := model.VerificationToken{
		Identifier: identifier,
		Token:      tokenValue,
		Expires:    time.Now().Add(a.verificationTokenTTL),
	}

	saved, err := a.verificationStore.Create(ctx, token)
	if err != nil {
		a.logger.Error("Auth service: failed to issue verification token",
			"identifier", identifier,
			"error", err.Error())
		return model.VerificationToken{}, fmt.Errorf("failed to issue verification token: %w", err)
	}

	return saved, nil
}

// ConsumeVerificationToken redeems the (identifier, token) pair. The pair is
// deleted on first use; an absent, already consumed or expired pair yields
// model.ErrNotFound.
func (a *Auth) ConsumeVerificationToken(ctx context.Context, identifier, tokenValue string) error {
	consumed, err := a.verificationStore.Consume(ctx, identifier, tokenValue)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to consume verification token: %w", err)
	}

	if consumed.Expired(time.Now()) {
		a.logger.Info("Auth service: expired verification token consumed",
			"identifier", identifier)
		return model.ErrNotFound
	}

	a.logger.Info("Auth service: verification token consumed",
		"identifier", identifier)

	return nil
}

// DeleteUser removes a user and everything owned by it. Rows go through the
// database cascade in one statement; image blobs are removed from object
// storage afterwards, best effort.
func (a *Auth) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	garments, err := a.garmentStore.ListByUser(ctx, userID, model.GarmentFilter{})
	if err != nil {
		return fmt.Errorf("failed to list garments before user delete: %w", err)
	}

	var objectKeys []string
	for _, g := range garments {
		for _, img := range g.Images {
			if img.ObjectKey != "" {
				objectKeys = append(objectKeys, img.ObjectKey)
			}
		}
	}

	if err := a.userStore.Delete(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	for _, key := range objectKeys {
		if err := a.storage.Delete(ctx, key); err != nil {
			a.logger.Error("Auth service: failed to delete image object",
				"object_key", key,
				"error", err.Error())
		}
	}

	a.logger.Info("Auth service: user deleted",
		"user_id", userID,
		"garments", len(garments))

	return nil
}

// generateSessionToken returns 32 random bytes hex-encoded. Tokens are
// bearer credentials, uniqueness alone is not enough.
func generateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
