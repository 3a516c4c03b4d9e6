package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/domain/types"
	"github.com/lifeline-app/lifeline/pkg/repository/memory"
	"github.com/lifeline-app/lifeline/pkg/utils/errutil"
)

type conditionResponse struct {
	ID                  string                     `json:"id"`
	Title               string                     `json:"title"`
	Description         string                     `json:"description"`
	Severity            string                     `json:"severity"`
	Symptoms            []string                   `json:"symptoms"`
	Dos                 []string                   `json:"dos"`
	Donts               []string                   `json:"donts"`
	AssessmentQuestions []model.AssessmentQuestion `json:"assessment_questions"`
	UrgentActions       []string                   `json:"urgent_actions"`
}

func toConditionResponse(cond *model.EmergencyCondition) conditionResponse {
	return conditionResponse{
		ID:                  cond.ID,
		Title:               cond.Title,
		Description:         cond.Description,
		Severity:            cond.Severity.String(),
		Symptoms:            cond.Symptoms,
		Dos:                 cond.Dos,
		Donts:               cond.Donts,
		AssessmentQuestions: cond.AssessmentQuestions,
		UrgentActions:       cond.UrgentActions,
	}
}

type conditionListResponse struct {
	Emergencies []conditionResponse `json:"emergencies"`
}

func toConditionListResponse(conds []*model.EmergencyCondition) conditionListResponse {
	resp := conditionListResponse{
		Emergencies: make([]conditionResponse, len(conds)),
	}
	for i, cond := range conds {
		resp.Emergencies[i] = toConditionResponse(cond)
	}
	return resp
}

// listConditions serves the full table, optionally filtered by ?severity= or
// searched with ?q=
func (s *Server) listConditions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var conds []*model.EmergencyCondition
	var err error

	switch {
	case r.URL.Query().Has("q"):
		conds, err = s.uc.Guide.Search(ctx, r.URL.Query().Get("q"))
	case r.URL.Query().Has("severity"):
		conds, err = s.uc.Guide.ListBySeverity(ctx, types.Severity(r.URL.Query().Get("severity")))
	default:
		conds, err = s.uc.Guide.ListConditions(ctx)
	}

	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, toConditionListResponse(conds))
}

func (s *Server) listHighPriority(w http.ResponseWriter, r *http.Request) {
	conds, err := s.uc.Guide.ListHighPriority(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, toConditionListResponse(conds))
}

func (s *Server) getCondition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "conditionID")

	cond, err := s.uc.Guide.GetCondition(ctx, id)
	if err != nil {
		if errors.Is(err, memory.ErrNotFound) {
			errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
			return
		}
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, toConditionResponse(cond))
}

// getQuestions serves the condition's assessment questions; unknown ids
// yield an empty list, matching the query contract
func (s *Server) getQuestions(w http.ResponseWriter, r *http.Request) {
	questions := s.uc.Guide.AssessmentQuestions(r.Context(), chi.URLParam(r, "conditionID"))
	writeJSON(w, r, http.StatusOK, map[string][]model.AssessmentQuestion{
		"assessment_questions": questions,
	})
}

func (s *Server) getActions(w http.ResponseWriter, r *http.Request) {
	actions := s.uc.Guide.Actions(r.Context(), chi.URLParam(r, "conditionID"))
	writeJSON(w, r, http.StatusOK, actions)
}

func (s *Server) getUrgentActions(w http.ResponseWriter, r *http.Request) {
	urgent := s.uc.Guide.UrgentActions(r.Context(), chi.URLParam(r, "conditionID"))
	writeJSON(w, r, http.StatusOK, map[string][]string{"urgent_actions": urgent})
}

func (s *Server) getSeverityInfo(w http.ResponseWriter, r *http.Request) {
	info := s.uc.Guide.SeverityInfo(types.Severity(chi.URLParam(r, "level")))
	writeJSON(w, r, http.StatusOK, info)
}
