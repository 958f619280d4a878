package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/bloomlab/remedygraph/pkg/store"
)

type recommendationRequest struct {
	Symptoms string `json:"symptoms" validate:"required"`
	NLPMode  bool   `json:"nlp_mode"`
}

type selectionRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Symptoms string `json:"symptoms" validate:"required"`
	NLPMode  bool   `json:"nlp_mode"`
}

type selectionUpdateRequest struct {
	Symptoms string `json:"symptoms" validate:"required"`
	NLPMode  bool   `json:"nlp_mode"`
}

// selectionResponse re-attaches the recommendation payload that the store
// keeps as an opaque JSON column.
type selectionResponse struct {
	store.RemedySelection
	Recommendations json.RawMessage `json:"recommendations"`
}

func toSelectionResponse(sel store.RemedySelection) selectionResponse {
	return selectionResponse{
		RemedySelection: sel,
		Recommendations: sel.RecommendationsJSON(),
	}
}

func (s *Server) decodeAndValidate(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(err, "decoding request body")
	}
	return errors.Wrap(s.validate.Struct(v), "validating request")
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.Recommend(r.Context(), req.Symptoms, req.NLPMode)
	if err != nil {
		s.logger.WithError(err).Error("recommendation failed")
		respondError(w, http.StatusInternalServerError, "recommendation failed")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreateSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.Recommend(r.Context(), req.Symptoms, req.NLPMode)
	if err != nil {
		s.logger.WithError(err).Error("recommendation failed")
		respondError(w, http.StatusInternalServerError, "recommendation failed")
		return
	}

	sel := &store.RemedySelection{
		UserID:   req.UserID,
		Symptoms: req.Symptoms,
		NLPMode:  req.NLPMode,
	}
	if err := sel.SetRecommendations(result); err != nil {
		respondError(w, http.StatusInternalServerError, "encoding recommendations")
		return
	}
	if err := s.store.SaveSelection(sel); err != nil {
		s.logger.WithError(err).Error("saving selection")
		respondError(w, http.StatusInternalServerError, "saving selection")
		return
	}

	respondJSON(w, http.StatusCreated, toSelectionResponse(*sel))
}

func (s *Server) handleListSelections(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	selections, err := s.store.ListSelections(userID, 100)
	if err != nil {
		s.logger.WithError(err).Error("listing selections")
		respondError(w, http.StatusInternalServerError, "listing selections")
		return
	}

	out := make([]selectionResponse, 0, len(selections))
	for _, sel := range selections {
		out = append(out, toSelectionResponse(sel))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateSelection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "selectionID")

	var req selectionUpdateRequest
	if err := s.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.Recommend(r.Context(), req.Symptoms, req.NLPMode)
	if err != nil {
		s.logger.WithError(err).Error("recommendation failed")
		respondError(w, http.StatusInternalServerError, "recommendation failed")
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "encoding recommendations")
		return
	}

	if err := s.store.UpdateSelection(id, req.Symptoms, string(payload)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "selection not found")
			return
		}
		s.logger.WithError(err).Error("updating selection")
		respondError(w, http.StatusInternalServerError, "updating selection")
		return
	}

	sel, err := s.store.GetSelection(id)
	if err != nil {
		s.logger.WithError(err).Error("reloading selection")
		respondError(w, http.StatusInternalServerError, "reloading selection")
		return
	}
	respondJSON(w, http.StatusOK, toSelectionResponse(*sel))
}
