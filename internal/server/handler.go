// Package server exposes the engine over HTTP. The engine itself is
// transport-agnostic; this is the recommended JSON shape.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/skillbridge/server/internal/agent/model"
	"github.com/skillbridge/server/internal/agent/orchestrator"
	logx "github.com/skillbridge/server/pkg/logger"
)

type Handler struct {
	orch *orchestrator.Orchestrator
}

func New(orch *orchestrator.Orchestrator) *Handler {
	return &Handler{orch: orch}
}

// Routes builds the chi router for the chat surface.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/chat", h.handleChat)
	return r
}

type chatRequest struct {
	UserID      string `json:"user_id"`
	Message     string `json:"message"`
	Agent       string `json:"agent,omitempty"`
	Frustration string `json:"frustration,omitempty"`
}

type chatResponse struct {
	Agent               string             `json:"agent"`
	Message             string             `json:"message"`
	OnboardingCompleted bool               `json:"onboarding_completed"`
	Routing             *model.RoutingInfo `json:"routing,omitempty"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "user_id and message are required")
		return
	}

	var agent model.SpecialistID
	if req.Agent != "" {
		id, ok := model.ParseSpecialistID(req.Agent)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown agent")
			return
		}
		agent = id
	}

	res := h.orch.Handle(r.Context(), orchestrator.Request{
		UserID:      req.UserID,
		Message:     req.Message,
		Agent:       agent,
		Frustration: model.ParseFrustration(req.Frustration),
	})

	writeJSON(w, http.StatusOK, chatResponse{
		Agent:               string(res.AgentUsed),
		Message:             res.Reply,
		OnboardingCompleted: res.OnboardingCompleted,
		Routing:             res.Routing,
	})
}

// requestID tags every request for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		logx.Debug().Str("request_id", id).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logx.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
