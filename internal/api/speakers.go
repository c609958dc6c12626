package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/merdeka-labs/penyata/internal/escalation"
)

// listUnmatched handles GET /api/v1/speakers/unmatched.
func (s *Server) listUnmatched(w http.ResponseWriter, r *http.Request) {
	var documentID *uuid.UUID
	if raw := r.URL.Query().Get("document_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid document_id")
			return
		}
		documentID = &id
	}
	unmappedOnly := r.URL.Query().Get("unmapped_only") == "true"

	speakers, err := s.escalation.List(r.Context(), documentID, unmappedOnly)
	if err != nil {
		s.logger.Error("failed to list unmatched speakers", "error", err)
		writeError(w, http.StatusInternalServerError, "list failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"speakers": speakers,
		"count":    len(speakers),
	})
}

// suggestMappings handles GET /api/v1/speakers/unmatched/{id}/suggestions.
func (s *Server) suggestMappings(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	limit := s.suggestLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	suggestions, err := s.escalation.Suggest(r.Context(), id, limit)
	if errors.Is(err, escalation.ErrNotFound) {
		writeError(w, http.StatusNotFound, "unmatched speaker not found")
		return
	}
	if err != nil {
		s.logger.Error("failed to rank suggestions", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "suggestion ranking failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

// MappingRequest is the human-confirmed mapping payload.
type MappingRequest struct {
	LegislatorID string  `json:"legislator_id"`
	Confidence   float64 `json:"confidence"`
	Notes        string  `json:"notes"`
}

// confirmMapping handles POST /api/v1/speakers/unmatched/{id}/mapping.
func (s *Server) confirmMapping(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req MappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	legID, err := uuid.Parse(req.LegislatorID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid legislator_id")
		return
	}

	mapping, err := s.escalation.Confirm(r.Context(), id, legID, req.Confidence, req.Notes)
	switch {
	case errors.Is(err, escalation.ErrNotFound):
		writeError(w, http.StatusNotFound, "unmatched speaker not found")
		return
	case errors.Is(err, escalation.ErrAlreadyMapped):
		writeError(w, http.StatusConflict, "speaker already mapped")
	case errors.Is(err, escalation.ErrUnknownLegislator):
		writeError(w, http.StatusNotFound, "legislator not in roster")
		return
	case err != nil:
		s.logger.Error("failed to confirm mapping", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "confirmation failed")
		return
	}

	s.pipeline.MappingsConfirmed.Inc()
	writeJSON(w, http.StatusCreated, mapping)
}
