package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpctrl "github.com/lifeline-app/lifeline/pkg/controller/http"
	"github.com/lifeline-app/lifeline/pkg/domain/model"
	"github.com/lifeline-app/lifeline/pkg/repository/memory"
	"github.com/lifeline-app/lifeline/pkg/service/locator"
	"github.com/lifeline-app/lifeline/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type staticAssets struct {
	content string
}

func (a *staticAssets) LoadString(path string) (string, error) {
	return a.content, nil
}

type recordingOpener struct {
	result bool
	calls  int
}

func (o *recordingOpener) Open(ctx context.Context, pos model.Position) bool {
	o.calls++
	return o.result
}

const serverDataset = `{
	"emergencies": [
		{
			"id": "heart_attack",
			"title": "Heart Attack",
			"description": "Blockage of blood flow to the heart muscle.",
			"severity": "high",
			"symptoms": ["Chest pain or pressure"],
			"dos": ["Call emergency services"],
			"donts": ["Do not drive yourself"],
			"assessment_questions": [{"question": "Is the person conscious?", "type": "yes_no"}],
			"urgent_actions": ["Call emergency services now"]
		},
		{
			"id": "sprain",
			"title": "Sprain",
			"description": "Stretched or torn ligament.",
			"severity": "low",
			"symptoms": ["Swelling"]
		}
	]
}`

func newTestServer(t *testing.T, opener *recordingOpener) *httptest.Server {
	t.Helper()

	uc := usecase.New(memory.New(),
		usecase.WithLocationSource(locator.New(35.68124, 139.76713)),
		usecase.WithMapOpener(opener),
		usecase.WithAssets(&staticAssets{content: serverDataset}, "data/emergencies.json"),
	)
	uc.Guide.Init(context.Background())

	server, err := httpctrl.New(uc)
	gt.NoError(t, err).Required()

	srv := httptest.NewServer(server)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url) // #nosec G107 - test server URL
	gt.NoError(t, err).Required()
	defer resp.Body.Close()

	if out != nil {
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(out)).Required()
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &recordingOpener{})

	var body map[string]string
	gt.Value(t, getJSON(t, srv.URL+"/health", &body)).Equal(http.StatusOK)
	gt.Value(t, body["status"]).Equal("ok")
}

func TestListConditions(t *testing.T) {
	srv := newTestServer(t, &recordingOpener{})

	type listBody struct {
		Emergencies []struct {
			ID       string `json:"id"`
			Severity string `json:"severity"`
		} `json:"emergencies"`
	}

	t.Run("all", func(t *testing.T) {
		var body listBody
		gt.Value(t, getJSON(t, srv.URL+"/api/emergencies", &body)).Equal(http.StatusOK)
		gt.Array(t, body.Emergencies).Length(2)
		gt.Value(t, body.Emergencies[0].ID).Equal("heart_attack")
	})

	t.Run("severity filter", func(t *testing.T) {
		var body listBody
		gt.Value(t, getJSON(t, srv.URL+"/api/emergencies?severity=HIGH", &body)).Equal(http.StatusOK)
		gt.Array(t, body.Emergencies).Length(1)
		gt.Value(t, body.Emergencies[0].ID).Equal("heart_attack")
	})

	t.Run("search", func(t *testing.T) {
		var body listBody
		gt.Value(t, getJSON(t, srv.URL+"/api/emergencies?q=chest", &body)).Equal(http.StatusOK)
		gt.Array(t, body.Emergencies).Length(1)
		gt.Value(t, body.Emergencies[0].ID).Equal("heart_attack")
	})

	t.Run("high priority", func(t *testing.T) {
		var body listBody
		gt.Value(t, getJSON(t, srv.URL+"/api/emergencies/high-priority", &body)).Equal(http.StatusOK)
		gt.Array(t, body.Emergencies).Length(1)
	})
}

func TestGetCondition(t *testing.T) {
	srv := newTestServer(t, &recordingOpener{})

	t.Run("found", func(t *testing.T) {
		var body struct {
			ID            string   `json:"id"`
			Title         string   `json:"title"`
			UrgentActions []string `json:"urgent_actions"`
		}
		gt.Value(t, getJSON(t, srv.URL+"/api/emergencies/heart_attack", &body)).Equal(http.StatusOK)
		gt.Value(t, body.Title).Equal("Heart Attack")
		gt.Array(t, body.UrgentActions).Length(1)
	})

	t.Run("not found", func(t *testing.T) {
		gt.Value(t, getJSON(t, srv.URL+"/api/emergencies/no_such_condition", nil)).
			Equal(http.StatusNotFound)
	})
}

func TestConditionSubresources(t *testing.T) {
	srv := newTestServer(t, &recordingOpener{})

	t.Run("questions", func(t *testing.T) {
		var body struct {
			AssessmentQuestions []map[string]any `json:"assessment_questions"`
		}
		gt.Value(t, getJSON(t, srv.URL+"/api/emergencies/heart_attack/questions", &body)).
			Equal(http.StatusOK)
		gt.Array(t, body.AssessmentQuestions).Length(1)
		gt.Value(t, body.AssessmentQuestions[0]["question"]).Equal("Is the person conscious?")
	})

	t.Run("actions", func(t *testing.T) {
		var body struct {
			Dos   []string `json:"dos"`
			Donts []string `json:"donts"`
		}
		gt.Value(t, getJSON(t, srv.URL+"/api/emergencies/heart_attack/actions", &body)).
			Equal(http.StatusOK)
		gt.Array(t, body.Dos).Length(1)
		gt.Array(t, body.Donts).Length(1)
	})

	t.Run("urgent", func(t *testing.T) {
		var body struct {
			UrgentActions []string `json:"urgent_actions"`
		}
		gt.Value(t, getJSON(t, srv.URL+"/api/emergencies/heart_attack/urgent", &body)).
			Equal(http.StatusOK)
		gt.Array(t, body.UrgentActions).Length(1)
	})

	t.Run("unknown id yields empty lists", func(t *testing.T) {
		var body struct {
			AssessmentQuestions []map[string]any `json:"assessment_questions"`
		}
		gt.Value(t, getJSON(t, srv.URL+"/api/emergencies/missing/questions", &body)).
			Equal(http.StatusOK)
		gt.Array(t, body.AssessmentQuestions).Length(0)
	})
}

func TestGetSeverityInfo(t *testing.T) {
	srv := newTestServer(t, &recordingOpener{})

	var body struct {
		Title string `json:"title"`
		Color string `json:"color"`
	}
	gt.Value(t, getJSON(t, srv.URL+"/api/severities/HIGH", &body)).Equal(http.StatusOK)
	gt.Value(t, body.Title).Equal("High Priority")
	gt.Value(t, body.Color).Equal("#D32F2F")

	gt.Value(t, getJSON(t, srv.URL+"/api/severities/critical", &body)).Equal(http.StatusOK)
	gt.Value(t, body.Title).Equal("Unknown Severity")
}

func TestGetLocation(t *testing.T) {
	srv := newTestServer(t, &recordingOpener{})

	var body struct {
		Outcome string `json:"outcome"`
		Display string `json:"display"`
		Stale   bool   `json:"stale"`
	}
	gt.Value(t, getJSON(t, srv.URL+"/api/location", &body)).Equal(http.StatusOK)
	gt.Value(t, body.Outcome).Equal("RESOLVED")
	gt.Bool(t, strings.HasPrefix(body.Display, "Lat: 35.68124, Lon: 139.76713")).True()
	gt.Bool(t, body.Stale).False()
}

func TestOpenInMap(t *testing.T) {
	opener := &recordingOpener{result: true}
	srv := newTestServer(t, opener)

	resp, err := http.Post(srv.URL+"/api/location/map", "application/json", nil)
	gt.NoError(t, err).Required()
	defer resp.Body.Close()

	var body struct {
		Opened bool `json:"opened"`
	}
	gt.NoError(t, json.NewDecoder(resp.Body).Decode(&body)).Required()
	gt.Value(t, resp.StatusCode).Equal(http.StatusOK)
	gt.Bool(t, body.Opened).True()
	gt.Value(t, opener.calls).Equal(1)
}
