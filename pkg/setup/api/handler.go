package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/simple-ideas/pkg/setup"
)

// Handler handles the first-admin setup endpoints. Neither route requires
// authentication; CreateFirstAdmin is guarded only by its once-globally
// semantics.
type Handler struct {
	service *setup.SetupService
}

// NewHandler creates a new setup handler
func NewHandler(service *setup.SetupService) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers the setup routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/status", h.Status)
	r.Post("/admin", h.CreateFirstAdmin)
}

type CreateFirstAdminRequest struct {
	Email string `json:"email"`
}

// Status handles GET /setup/status - whether an admin exists yet
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	hasAdmin, err := h.service.HasAdminUser(r.Context())
	if err != nil {
		slog.Error("Failed to check for admin", "error", err)
		http.Error(w, "Failed to check setup status", http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, map[string]bool{"has_admin_user": hasAdmin})
}

// CreateFirstAdmin handles POST /setup/admin - one-time admin assignment
func (h *Handler) CreateFirstAdmin(w http.ResponseWriter, r *http.Request) {
	var req CreateFirstAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CreateFirstAdmin(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, setup.ErrAlreadyInitialized):
			http.Error(w, "An admin user already exists", http.StatusConflict)
		case errors.Is(err, setup.ErrUserNotFound):
			http.Error(w, "User not found. Please create an account first.", http.StatusNotFound)
		default:
			slog.Error("Failed to create first admin", "email", req.Email, "error", err)
			http.Error(w, "Failed to create first admin", http.StatusInternalServerError)
		}
		return
	}

	render.JSON(w, r, result)
}
