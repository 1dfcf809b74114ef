// Package handler is the thin HTTP layer over the checklist service. It
// delegates to the service without embedding business logic so transport
// concerns stay isolated.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"chaincheck/internal/catalog"
	"chaincheck/internal/checklist"
	"chaincheck/internal/platform/middleware"
	"chaincheck/internal/threat"
	"chaincheck/internal/transport/http/shared"
	dErrors "chaincheck/pkg/domain-errors"
)

// Handler handles the checklist API endpoints.
type Handler struct {
	logger  *slog.Logger
	service *checklist.Service
}

// New creates a checklist Handler.
func New(service *checklist.Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, service: service}
}

// Register registers the checklist routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/categories", h.handleListCategories)
	r.Get("/categories/{categoryID}", h.handleGetCategory)
	r.Post("/items/{itemID}/toggle", h.handleToggleItem)
	r.Get("/threat-level", h.handleGetThreatLevel)
	r.Put("/threat-level", h.handlePutThreatLevel)
	r.Get("/threat-profiles", h.handleListProfiles)
	r.Get("/score", h.handleScore)
	r.Get("/stats", h.handleStats)
	r.Post("/presets/apply", h.handleApplyPreset)
	r.Get("/presets/preview", h.handlePresetPreview)
	r.Get("/history", h.handleHistory)
	r.Get("/version", h.handleVersion)
}

// levelFromQuery resolves the optional threat_level query parameter,
// defaulting to the active level. An explicit invalid value is a client
// error rather than a silent fallback.
func (h *Handler) levelFromQuery(r *http.Request) (threat.Level, error) {
	raw := r.URL.Query().Get("threat_level")
	if raw == "" {
		return h.service.ThreatLevel(), nil
	}
	level, ok := threat.ParseLevel(raw)
	if !ok {
		return threat.LevelAll, dErrors.New(dErrors.CodeBadRequest, "invalid threat level: "+raw)
	}
	return level, nil
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	level, err := h.levelFromQuery(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"threatLevel":   string(level),
		"transitioning": h.service.Transitioning(),
		"version":       h.service.Version(),
		"categories":    h.service.CategoriesAt(level),
	})
}

func (h *Handler) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	level, err := h.levelFromQuery(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	categoryID := chi.URLParam(r, "categoryID")
	cat, err := h.service.Category(categoryID, level)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	score, err := h.service.CategoryScoreAt(categoryID, level)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"threatLevel": string(level),
		"category":    cat,
		"score":       score,
	})
}

type toggleRequest struct {
	CategoryID string `json:"categoryId"`
}

func (h *Handler) handleToggleItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := chi.URLParam(r, "itemID")

	// Body is optional; the category ID inside is traceability only.
	// Chunked requests report ContentLength -1, so decode unconditionally
	// and treat EOF as an absent body.
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.WarnContext(ctx, "invalid toggle request body",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	completed, err := h.service.ToggleItem(ctx, req.CategoryID, itemID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"id":        itemID,
		"completed": completed,
		"version":   h.service.Version(),
	})
}

func (h *Handler) handleGetThreatLevel(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"level":         string(h.service.ThreatLevel()),
		"transitioning": h.service.Transitioning(),
	})
}

type putThreatLevelRequest struct {
	Level string `json:"level"`
}

func (h *Handler) handlePutThreatLevel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req putThreatLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := h.service.SetThreatLevel(ctx, threat.Level(req.Level)); err != nil {
		if !dErrors.Is(err, dErrors.CodeBadRequest) {
			h.logger.ErrorContext(ctx, "failed to set threat level",
				"request_id", middleware.GetRequestID(ctx),
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"level":   req.Level,
		"version": h.service.Version(),
	})
}

func (h *Handler) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"profiles": threat.Profiles(),
	})
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	level, err := h.levelFromQuery(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, h.service.Scores(level))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, http.StatusOK, h.service.Stats())
}

type applyPresetRequest struct {
	Levels []string `json:"levels"`
	Mode   string   `json:"mode"`
}

func (h *Handler) handleApplyPreset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req applyPresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	levels := make([]catalog.Level, len(req.Levels))
	for i, l := range req.Levels {
		levels[i] = catalog.Level(l)
	}

	if err := h.service.ApplyPreset(ctx, levels, checklist.PresetMode(req.Mode)); err != nil {
		if !dErrors.Is(err, dErrors.CodeBadRequest) {
			h.logger.ErrorContext(ctx, "failed to apply preset",
				"request_id", middleware.GetRequestID(ctx),
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"version": h.service.Version(),
	})
}

func (h *Handler) handlePresetPreview(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("levels")
	if raw == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "levels query parameter is required"))
		return
	}
	var levels []catalog.Level
	for _, part := range strings.Split(raw, ",") {
		level := catalog.Level(strings.TrimSpace(part))
		if !level.Valid() {
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid item level: "+string(level)))
			return
		}
		levels = append(levels, level)
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"count": h.service.PresetPreview(levels),
	})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, http.StatusOK, h.service.History())
}

func (h *Handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"version": h.service.Version(),
	})
}
