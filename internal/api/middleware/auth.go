package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/arblack/trade-tracker/internal/api/response"
	"github.com/arblack/trade-tracker/internal/apperrors"
	"github.com/arblack/trade-tracker/internal/model"
	"github.com/arblack/trade-tracker/internal/service"
)

type contextKey string

// userContextKey carries the authenticated user through the request context.
const userContextKey contextKey = "authenticatedUser"

// Authenticator provides session-token authentication middleware. Tokens are
// carried as "Authorization: Bearer <token>".
type Authenticator struct {
	authService *service.AuthService
}

// NewAuthenticator creates a new Authenticator backed by the given AuthService.
func NewAuthenticator(authService *service.AuthService) *Authenticator {
	return &Authenticator{authService: authService}
}

// RequireUser rejects requests without a valid session token. The resolved
// user is stored in the request context for handlers to read via UserFrom.
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			response.RespondError(w, http.StatusUnauthorized, "authentication required", "")
			return
		}

		user, err := a.authService.Authenticate(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrUserBanned):
				response.RespondError(w, http.StatusForbidden, apperrors.ErrUserBanned.Error(), "")
			case errors.Is(err, apperrors.ErrInvalidToken):
				response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidToken.Error(), "")
			default:
				response.RespondError(w, http.StatusInternalServerError, "authentication failed", err.Error())
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// WithUser returns a context carrying the given user, as RequireUser would
// have stored it.
func WithUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// RequireAdmin rejects requests from non-admin users. Must be mounted inside
// RequireUser.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFrom(r.Context())
		if !ok || !user.IsAdmin {
			response.RespondError(w, http.StatusForbidden, apperrors.ErrForbidden.Error(), "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFrom retrieves the authenticated user stored by RequireUser.
func UserFrom(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userContextKey).(model.User)
	return user, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}
