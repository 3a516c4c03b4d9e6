package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/repository/memory"
	"github.com/lifeline-app/lifeline/pkg/service/advisor"
	"github.com/lifeline-app/lifeline/pkg/usecase"
	"github.com/lifeline-app/lifeline/pkg/utils/errutil"
)

type adviceRequest struct {
	Situation string             `json:"situation"`
	Answers   []advisor.Answer   `json:"answers"`
	Profile   *model.UserProfile `json:"profile"`
}

type adviceResponse struct {
	Advice    string `json:"advice"`
	Generated bool   `json:"generated"`
}

// getAdvice serves first aid guidance for the condition. The body is optional;
// without one the guidance is built from the condition record alone.
func (s *Server) getAdvice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "conditionID")

	var req adviceRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to parse advice request"),
				http.StatusBadRequest)
			return
		}
	}

	advice, err := s.uc.Guide.Advise(ctx, id, usecase.AdviceRequest{
		Situation: req.Situation,
		Answers:   req.Answers,
		Profile:   req.Profile,
	})
	if err != nil {
		if errors.Is(err, memory.ErrNotFound) {
			errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
			return
		}
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, adviceResponse{
		Advice:    advice.Text,
		Generated: advice.Generated,
	})
}

type chatRequest struct {
	Prompt  string                `json:"prompt"`
	History []advisor.ChatMessage `json:"history"`
	Profile *model.UserProfile    `json:"profile"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// postChat answers a general medical question. 503 when no advisor is
// configured, since chat has no static fallback.
func (s *Server) postChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to parse chat request"),
			http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		errutil.HandleHTTP(ctx, w, goerr.New("prompt is required"), http.StatusBadRequest)
		return
	}

	answer, err := s.uc.Guide.Chat(ctx, advisor.ChatInput{
		Prompt:  req.Prompt,
		History: req.History,
		Profile: req.Profile,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrAdvisorUnavailable) {
			errutil.HandleHTTP(ctx, w, err, http.StatusServiceUnavailable)
			return
		}
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, chatResponse{Answer: answer})
}
