package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/harryneopotter/hanger-on-server/internal/logger"
	"github.com/harryneopotter/hanger-on-server/internal/model"
)

// Authenticator verifies a bearer token against its backing session.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (model.AccessClaims, error)
}

// Authenticate validates bearer tokens and injects the user id into the
// request context.
type Authenticate struct {
	auth           Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(auth Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{auth: auth, contextManager: contextManager, logger: logger}
}

// Handler parses the Authorization header, validates the token and passes
// the request on with the user id in context. Requests without a valid
// token get 401.
func (m *Authenticate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if tokenString == "" {
			http.Error(w, "missing authorization token", http.StatusUnauthorized)
			return
		}

		claims, err := m.auth.Authenticate(r.Context(), tokenString)
		if err != nil {
			m.logger.Debug("authentication failed", "error", err.Error())
			http.Error(w, "invalid authorization token", http.StatusUnauthorized)
			return
		}

		ctx := m.contextManager.SetUserIDToContext(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
