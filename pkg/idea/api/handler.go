package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ggicci/httpin"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/tendant/simple-ideas/pkg/client"
	"github.com/tendant/simple-ideas/pkg/idea"
)

// Handler handles HTTP requests for ideas
type Handler struct {
	service *idea.IdeaService
}

// NewHandler creates a new idea handler
func NewHandler(service *idea.IdeaService) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterPublicRoutes registers idea routes that require no authentication
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/", h.ListIdeas)
}

// RegisterProtectedRoutes registers idea routes that require an
// authenticated caller; mount under a group with the auth middleware.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/mine", h.MyIdeas)
	r.With(httpin.NewInput(SubmitIdeaInput{})).Post("/", h.SubmitIdea)
	r.Post("/{ideaId}/pledge", h.PledgeSupport)
	r.With(httpin.NewInput(UpdateStatusInput{})).Put("/{ideaId}/status", h.UpdateStatus)
}

type SubmitIdeaRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type SubmitIdeaInput struct {
	Payload *SubmitIdeaRequest `in:"body=json"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateStatusInput struct {
	Payload *UpdateStatusRequest `in:"body=json"`
}

// ListIdeas handles GET /ideas - list ideas, optionally filtered by status
func (h *Handler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	var status *idea.IdeaStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := idea.IdeaStatus(v)
		if !s.Valid() {
			http.Error(w, "Invalid status filter", http.StatusBadRequest)
			return
		}
		status = &s
	}

	ideas, err := h.service.ListIdeas(r.Context(), status)
	if err != nil {
		slog.Error("Failed to list ideas", "error", err)
		http.Error(w, "Failed to list ideas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ideas)
}

// MyIdeas handles GET /ideas/mine - list the caller's own ideas
func (h *Handler) MyIdeas(w http.ResponseWriter, r *http.Request) {
	authUser, ok := client.AuthUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ideas, err := h.service.MyIdeas(r.Context(), authUser.UserUuid)
	if err != nil {
		slog.Error("Failed to list own ideas", "userId", authUser.UserId, "error", err)
		http.Error(w, "Failed to list ideas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ideas)
}

// SubmitIdea handles POST /ideas - submit a new idea
func (h *Handler) SubmitIdea(w http.ResponseWriter, r *http.Request) {
	authUser, ok := client.AuthUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	input := r.Context().Value(httpin.Input).(*SubmitIdeaInput)

	params := idea.SubmitIdeaParams{}
	copier.Copy(&params, input.Payload)

	ideaID, err := h.service.SubmitIdea(r.Context(), authUser.UserUuid, params)
	if err != nil {
		slog.Error("Failed to submit idea", "userId", authUser.UserId, "error", err)
		http.Error(w, "Failed to submit idea", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": ideaID.String()})
}

// PledgeSupport handles POST /ideas/{ideaId}/pledge - upvote an idea
func (h *Handler) PledgeSupport(w http.ResponseWriter, r *http.Request) {
	if _, ok := client.AuthUserFromContext(r.Context()); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ideaID, err := uuid.Parse(chi.URLParam(r, "ideaId"))
	if err != nil {
		http.Error(w, "Invalid idea id", http.StatusBadRequest)
		return
	}

	count, err := h.service.PledgeSupport(r.Context(), ideaID)
	if err != nil {
		if errors.Is(err, idea.ErrIdeaNotFound) {
			http.Error(w, "Idea not found", http.StatusNotFound)
			return
		}
		slog.Error("Failed to pledge support", "ideaId", ideaID, "error", err)
		http.Error(w, "Failed to pledge support", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int32{"pledge_support_count": count})
}

// UpdateStatus handles PUT /ideas/{ideaId}/status - admin status transition
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	authUser, ok := client.AuthUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ideaID, err := uuid.Parse(chi.URLParam(r, "ideaId"))
	if err != nil {
		http.Error(w, "Invalid idea id", http.StatusBadRequest)
		return
	}

	input := r.Context().Value(httpin.Input).(*UpdateStatusInput)

	status, err := h.service.UpdateIdeaStatus(r.Context(), authUser.UserUuid, ideaID, idea.IdeaStatus(input.Payload.Status))
	if err != nil {
		switch {
		case errors.Is(err, idea.ErrInvalidStatus):
			http.Error(w, "Invalid status", http.StatusBadRequest)
		case errors.Is(err, idea.ErrForbidden):
			http.Error(w, "Forbidden: admin access required", http.StatusForbidden)
		case errors.Is(err, idea.ErrIdeaNotFound):
			http.Error(w, "Idea not found", http.StatusNotFound)
		default:
			slog.Error("Failed to update idea status", "ideaId", ideaID, "error", err)
			http.Error(w, "Failed to update idea status", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": string(status)})
}
