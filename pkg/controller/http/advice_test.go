package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpctrl "github.com/lifeline-app/lifeline/pkg/controller/http"
	"github.com/lifeline-app/lifeline/pkg/repository/memory"
	"github.com/lifeline-app/lifeline/pkg/service/advisor"
	"github.com/lifeline-app/lifeline/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type scriptedAdvisor struct {
	adviseResp string
	chatResp   string

	lastInput advisor.Input
	lastChat  advisor.ChatInput
}

func (a *scriptedAdvisor) Advise(ctx context.Context, input advisor.Input) (string, error) {
	a.lastInput = input
	return a.adviseResp, nil
}

func (a *scriptedAdvisor) Chat(ctx context.Context, input advisor.ChatInput) (string, error) {
	a.lastChat = input
	return a.chatResp, nil
}

func newAdvisorServer(t *testing.T, adv advisor.Service) *httptest.Server {
	t.Helper()

	opts := []usecase.Option{
		usecase.WithAssets(&staticAssets{content: serverDataset}, "data/emergencies.json"),
	}
	if adv != nil {
		opts = append(opts, usecase.WithAdvisor(adv))
	}

	uc := usecase.New(memory.New(), opts...)
	uc.Guide.Init(context.Background())

	server, err := httpctrl.New(uc)
	gt.NoError(t, err).Required()

	srv := httptest.NewServer(server)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, in, out any) int {
	t.Helper()

	var body bytes.Buffer
	if in != nil {
		gt.NoError(t, json.NewEncoder(&body).Encode(in)).Required()
	}

	resp, err := http.Post(url, "application/json", &body) // #nosec G107 - test server URL
	gt.NoError(t, err).Required()
	defer resp.Body.Close()

	if out != nil {
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(out)).Required()
	}
	return resp.StatusCode
}

func TestGetAdvice(t *testing.T) {
	t.Run("generated", func(t *testing.T) {
		adv := &scriptedAdvisor{adviseResp: "1. Call emergency services now."}
		srv := newAdvisorServer(t, adv)

		var body struct {
			Advice    string `json:"advice"`
			Generated bool   `json:"generated"`
		}
		status := postJSON(t, srv.URL+"/api/emergencies/heart_attack/advice", map[string]any{
			"situation": "Chest pain at home.",
			"answers":   []map[string]string{{"question": "Is the person conscious?", "answer": "yes"}},
		}, &body)

		gt.Value(t, status).Equal(http.StatusOK)
		gt.Bool(t, body.Generated).True()
		gt.Value(t, body.Advice).Equal("1. Call emergency services now.")
		gt.Value(t, adv.lastInput.Condition.ID).Equal("heart_attack")
		gt.Value(t, adv.lastInput.Situation).Equal("Chest pain at home.")
	})

	t.Run("static guidance without advisor", func(t *testing.T) {
		srv := newAdvisorServer(t, nil)

		var body struct {
			Advice    string `json:"advice"`
			Generated bool   `json:"generated"`
		}
		status := postJSON(t, srv.URL+"/api/emergencies/heart_attack/advice", nil, &body)

		gt.Value(t, status).Equal(http.StatusOK)
		gt.Bool(t, body.Generated).False()
		gt.String(t, body.Advice).Contains("1. Call emergency services now")
	})

	t.Run("unknown condition", func(t *testing.T) {
		srv := newAdvisorServer(t, nil)
		gt.Value(t, postJSON(t, srv.URL+"/api/emergencies/no_such/advice", nil, nil)).
			Equal(http.StatusNotFound)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := newAdvisorServer(t, nil)

		resp, err := http.Post(srv.URL+"/api/emergencies/heart_attack/advice",
			"application/json", bytes.NewBufferString("{not json"))
		gt.NoError(t, err).Required()
		defer resp.Body.Close()
		gt.Value(t, resp.StatusCode).Equal(http.StatusBadRequest)
	})
}

func TestPostChat(t *testing.T) {
	t.Run("answered", func(t *testing.T) {
		adv := &scriptedAdvisor{chatResp: "Air in the abdominal cavity."}
		srv := newAdvisorServer(t, adv)

		var body struct {
			Answer string `json:"answer"`
		}
		status := postJSON(t, srv.URL+"/api/chat", map[string]any{
			"prompt": "What is pneumoperitoneum?",
			"history": []map[string]string{
				{"role": "user", "content": "Hello"},
			},
		}, &body)

		gt.Value(t, status).Equal(http.StatusOK)
		gt.Value(t, body.Answer).Equal("Air in the abdominal cavity.")
		gt.Value(t, adv.lastChat.Prompt).Equal("What is pneumoperitoneum?")
		gt.Array(t, adv.lastChat.History).Length(1)
	})

	t.Run("blank prompt", func(t *testing.T) {
		srv := newAdvisorServer(t, &scriptedAdvisor{chatResp: "ok"})
		gt.Value(t, postJSON(t, srv.URL+"/api/chat", map[string]string{"prompt": "  "}, nil)).
			Equal(http.StatusBadRequest)
	})

	t.Run("advisor not configured", func(t *testing.T) {
		srv := newAdvisorServer(t, nil)
		gt.Value(t, postJSON(t, srv.URL+"/api/chat", map[string]string{"prompt": "hi"}, nil)).
			Equal(http.StatusServiceUnavailable)
	})
}
