package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/merdeka-labs/penyata/internal/analysis"
)

// AnalysisRequest scopes one analysis to a document and a target
// legislator.
type AnalysisRequest struct {
	DocumentID   string `json:"document_id"`
	LegislatorID string `json:"legislator_id"`
	Text         string `json:"text"`
}

// createAnalysis handles POST /api/v1/analyses.
func (s *Server) createAnalysis(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	docID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid document_id")
		return
	}
	legID, err := uuid.Parse(req.LegislatorID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid legislator_id")
		return
	}

	roster, err := s.roster.LoadRoster(r.Context())
	if err != nil {
		s.logger.Error("failed to load roster", "error", err)
		writeError(w, http.StatusInternalServerError, "roster unavailable")
		return
	}

	result, err := analysis.Analyze(docID, req.Text, roster, legID)
	switch {
	case errors.Is(err, analysis.ErrEmptyDocument):
		writeError(w, http.StatusBadRequest, "document text is empty")
		return
	case errors.Is(err, analysis.ErrUnknownLegislator):
		writeError(w, http.StatusNotFound, "legislator not in roster")
		return
	case err != nil:
		s.logger.Error("analysis failed", "document_id", docID, "error", err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
