package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/umputun/deckwatch/pkg/domain"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"columns": len(s.deck.Columns()),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// columnsHandler returns the column list in display order
func (s *Server) columnsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.deck.Columns())
}

// addColumnHandler creates a new content column
func (s *Server) addColumnHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		renderError(w, r, fmt.Errorf("url is required"), http.StatusBadRequest)
		return
	}

	col, err := s.deck.AddColumn(r.Context(), req.URL)
	if err != nil {
		log.Printf("[ERROR] failed to add column: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, col)
}

// removeColumnHandler deletes a content column
func (s *Server) removeColumnHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.deck.RemoveColumn(r.Context(), id); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"removed": id})
}

// moveColumnHandler changes a column position in display order
func (s *Server) moveColumnHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		Position *int `json:"position"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Position == nil {
		renderError(w, r, fmt.Errorf("position is required"), http.StatusBadRequest)
		return
	}

	if err := s.deck.MoveColumn(r.Context(), id, *req.Position); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, s.deck.Columns())
}

// filtersHandler returns all filter rules
func (s *Server) filtersHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.deck.Filters())
}

// addFilterHandler creates a new filter rule
func (s *Server) addFilterHandler(w http.ResponseWriter, r *http.Request) {
	var rule domain.FilterRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	created, err := s.deck.AddFilter(r.Context(), rule)
	if err != nil {
		log.Printf("[ERROR] failed to add filter: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, created)
}

// updateFilterHandler replaces an existing filter rule
func (s *Server) updateFilterHandler(w http.ResponseWriter, r *http.Request) {
	var rule domain.FilterRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	rule.ID = r.PathValue("id")

	if err := s.deck.UpdateFilter(r.Context(), rule); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, rule)
}

// removeFilterHandler deletes a filter rule
func (s *Server) removeFilterHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.deck.RemoveFilter(r.Context(), id); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"removed": id})
}

// settingsHandler returns display settings
func (s *Server) settingsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.deck.Settings())
}

// updateSettingsHandler replaces display settings
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var settings domain.DisplaySettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.deck.UpdateSettings(r.Context(), settings); err != nil {
		log.Printf("[ERROR] failed to update settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, settings)
}

// rateLimitsHandler returns the full category to quota map
func (s *Server) rateLimitsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.limits.Limits())
}

// resetRateLimitsHandler clears rate limit state, explicit user action only.
// A failed persistence surfaces synchronously to the caller.
func (s *Server) resetRateLimitsHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.limits.Reset(r.Context()); err != nil {
		log.Printf("[ERROR] failed to reset rate limits: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, s.limits.Limits())
}

// exportHandler returns the full app config document
func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="deckwatch-config.json"`)
	renderJSON(w, r, http.StatusOK, s.deck.Export())
}

// importHandler replaces the full app config from an exported document
func (s *Server) importHandler(w http.ResponseWriter, r *http.Request) {
	var cfg domain.AppConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		renderError(w, r, fmt.Errorf("invalid config document"), http.StatusBadRequest)
		return
	}

	if err := s.deck.Import(r.Context(), cfg); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"columns": len(cfg.Columns),
		"filters": len(cfg.Filters),
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
