package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/simple-ideas/pkg/client"
	rolepkg "github.com/tendant/simple-ideas/pkg/role"
)

// Handle serves role queries for the current caller
type Handle struct {
	roleService *rolepkg.RoleService
}

func NewHandle(roleService *rolepkg.RoleService) *Handle {
	return &Handle{
		roleService: roleService,
	}
}

// RegisterRoutes registers caller-facing role routes. Mount under a group
// with the optional-auth middleware: anonymous callers get a plain false,
// not an error.
func (h *Handle) RegisterRoutes(r chi.Router) {
	r.Get("/is-admin", h.IsAdmin)
}

// IsAdmin handles GET /me/is-admin
func (h *Handle) IsAdmin(w http.ResponseWriter, r *http.Request) {
	authUser, ok := client.AuthUserFromContext(r.Context())
	if !ok {
		render.JSON(w, r, map[string]bool{"is_admin": false})
		return
	}

	isAdmin, err := h.roleService.IsAdmin(r.Context(), authUser.UserUuid)
	if err != nil {
		slog.Error("Failed to resolve role", "userId", authUser.UserId, "error", err)
		http.Error(w, "Failed to resolve role", http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, map[string]bool{"is_admin": isAdmin})
}
