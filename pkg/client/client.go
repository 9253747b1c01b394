package client

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

// AuthUser is the caller identity extracted from a verified token. The role
// is intentionally not carried here: role resolution goes through the role
// store on every request so grants take effect without re-issuing tokens.
type AuthUser struct {
	UserId string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	// UserId parsed as a uuid.UUID, convenient for repository calls
	UserUuid uuid.UUID
}

func (u AuthUser) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user", u.UserId),
	)
}

// contextKey is a value for use with context.WithValue. It's used as
// a pointer so it fits in an interface{} without allocation.
type contextKey struct {
	name string
}

func (k *contextKey) String() string {
	return "ideas context value " + k.name
}

const ACCESS_TOKEN_NAME = "access_token"

var AuthUserKey = &contextKey{"AuthUser"}

// Verifier checks the request token from the Authorization header or the
// access_token cookie. It never rejects by itself; rejection happens in
// jwtauth.Authenticator on protected route groups.
func Verifier(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return jwtauth.Verify(ja, jwtauth.TokenFromHeader, TokenFromCookie)(next)
	}
}

func TokenFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(ACCESS_TOKEN_NAME)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// AuthUserFromContext returns the authenticated caller, if any.
func AuthUserFromContext(ctx context.Context) (*AuthUser, bool) {
	authUser, ok := ctx.Value(AuthUserKey).(*AuthUser)
	return authUser, ok
}

// authUserFromClaims builds an AuthUser from verified token claims. Returns
// false when the claims carry no usable user id.
func authUserFromClaims(claims map[string]interface{}) (*AuthUser, bool) {
	authUser := &AuthUser{}

	if v, ok := claims["user_id"].(string); ok {
		authUser.UserId = v
	} else if v, ok := claims["sub"].(string); ok {
		authUser.UserId = v
	}
	if v, ok := claims["email"].(string); ok {
		authUser.Email = v
	}

	if authUser.UserId == "" {
		return nil, false
	}

	userUUID, err := uuid.Parse(authUser.UserId)
	if err != nil {
		slog.Warn("failed to parse user ID as UUID", "userId", authUser.UserId, "error", err)
		return nil, false
	}
	authUser.UserUuid = userUUID

	return authUser, true
}

// AuthUserMiddleware extracts the caller identity from verified JWT claims
// and stores it in the request context. Must run after Verifier and
// jwtauth.Authenticator; a missing or unusable identity is a 401.
func AuthUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || claims == nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		authUser, ok := authUserFromClaims(claims)
		if !ok {
			http.Error(w, "missing user ID in token", http.StatusUnauthorized)
			return
		}

		slog.Debug("authenticated user", "userId", authUser.UserId)

		ctx := context.WithValue(r.Context(), AuthUserKey, authUser)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthUserMiddleware populates the caller identity when a valid
// token is present and continues anonymously otherwise. Used on public
// routes whose behavior varies with identity, like the is-admin check.
func OptionalAuthUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err == nil && claims != nil {
			if authUser, ok := authUserFromClaims(claims); ok {
				ctx := context.WithValue(r.Context(), AuthUserKey, authUser)
				r = r.WithContext(ctx)
			}
		}

		next.ServeHTTP(w, r)
	})
}
