package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-ideas/pkg/client"
	rolepkg "github.com/tendant/simple-ideas/pkg/role"
)

func isAdminResponse(t *testing.T, router *chi.Mux, token string) bool {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me/is-admin", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp["is_admin"]
}

func TestIsAdmin(t *testing.T) {
	repo := rolepkg.NewInMemoryUserRoleRepository()
	handle := NewHandle(rolepkg.NewRoleService(repo))
	auth := jwtauth.New("HS256", []byte("test-secret"), nil)

	router := chi.NewRouter()
	router.Use(client.Verifier(auth))
	router.Route("/me", func(r chi.Router) {
		r.Use(client.OptionalAuthUserMiddleware)
		handle.RegisterRoutes(r)
	})

	adminID := uuid.New()
	userID := uuid.New()
	repo.SeedRole(rolepkg.UserRole{UserID: adminID, Role: rolepkg.RoleAdmin})

	// Anonymous callers get false, not an error
	assert.False(t, isAdminResponse(t, router, ""))

	_, userToken, err := auth.Encode(map[string]interface{}{"user_id": userID.String()})
	require.NoError(t, err)
	assert.False(t, isAdminResponse(t, router, userToken))

	_, adminToken, err := auth.Encode(map[string]interface{}{"user_id": adminID.String()})
	require.NoError(t, err)
	assert.True(t, isAdminResponse(t, router, adminToken))
}
