// Package http exposes the read-only presentation API over net/http.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"hockey-odds-service/internal/logging"
	"hockey-odds-service/internal/metrics"
	"hockey-odds-service/internal/page"
	"hockey-odds-service/internal/present"
	"hockey-odds-service/internal/providers"
)

// Handler serves the matchup views. Each request mounts a fresh page; there
// is no cross-request snapshot state.
type Handler struct {
	provider providers.PredictionProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	logos    present.LogoFunc
}

func NewHandler(provider providers.PredictionProvider, logger *slog.Logger, recorder *metrics.Recorder) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
		metrics:  recorder,
		logos:    present.TeamLogoURL,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether a provider is wired up. It does not call upstream.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	if h.provider == nil {
		writeError(w, http.StatusServiceUnavailable, "no prediction provider configured")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// MatchupsToday serves the list view for today's slate. Query params: q
// (team substring), bucket (all|tossups|favourites), percent (bool, default
// true).
func (h *Handler) MatchupsToday(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	query := r.URL.Query().Get("q")
	bucket, err := present.ParseBucket(r.URL.Query().Get("bucket"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	percentMode, err := parsePercent(r.URL.Query().Get("percent"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, ok := h.loadPage(w, r, page.ViewToday)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, present.NewListView(res.Snapshot, query, bucket, percentMode))
}

// MatchupByID serves the detail view for a single game.
func (h *Handler) MatchupByID(w http.ResponseWriter, r *http.Request, id string) {
	if !requireGet(w, r) {
		return
	}
	if strings.TrimSpace(id) == "" {
		writeError(w, http.StatusBadRequest, "missing game id")
		return
	}
	percentMode, err := parsePercent(r.URL.Query().Get("percent"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, ok := h.loadPage(w, r, page.ViewGame)
	if !ok {
		return
	}

	m, found := res.Snapshot.Matchup(id)
	if !found {
		logging.Warn(h.logger, "matchup not found", slog.String(logging.FieldGameID, id))
		writeError(w, http.StatusNotFound, "matchup not found")
		return
	}

	writeJSON(w, http.StatusOK, present.NewDetailView(m, percentMode, h.logos))
}

// loadPage mounts a page for the request, runs its single fetch, and maps
// failure outcomes onto the response. A false return means the response was
// already written.
func (h *Handler) loadPage(w http.ResponseWriter, r *http.Request, view string) (page.Result, bool) {
	p := page.Mount(h.provider, view, logging.FromContext(r.Context(), h.logger), h.metrics)
	p.Load(r.Context())

	res, err := p.Wait(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Client went away; nothing useful to write.
			return page.Result{}, false
		}
		writeError(w, http.StatusBadGateway, "prediction service timed out")
		return page.Result{}, false
	}
	if res.Status != page.StatusReady {
		logging.Error(h.logger, "upstream fetch failed", res.Err, slog.String("view", view))
		writeError(w, http.StatusBadGateway, "prediction service unavailable")
		return page.Result{}, false
	}
	return res, true
}

func parsePercent(raw string) (bool, error) {
	if raw == "" {
		return true, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New("percent must be a boolean")
	}
	return v, nil
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
