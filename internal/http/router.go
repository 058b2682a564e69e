package http

import (
	"net/http"
	"strings"
)

// NewRouter wires the handler's routes onto a ServeMux.
func NewRouter(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/matchups", h.MatchupsToday)
	mux.HandleFunc("/matchups/", h.matchupsSubtree)
	return mux
}

// matchupsSubtree dispatches /matchups/today to the list view and
// /matchups/{id} to the detail view.
func (h *Handler) matchupsSubtree(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/matchups/")
	switch {
	case rest == "" || rest == "today":
		h.MatchupsToday(w, r)
	case strings.Contains(rest, "/"):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.MatchupByID(w, r, rest)
	}
}
