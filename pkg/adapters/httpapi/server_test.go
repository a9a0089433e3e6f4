package httpapi_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumora-app/intake/pkg/adapters/httpapi"
	"github.com/lumora-app/intake/pkg/adapters/memory"
	"github.com/lumora-app/intake/pkg/domain"
	"github.com/lumora-app/intake/pkg/session"
)

type sessionResponse struct {
	SessionID string      `json:"session_id"`
	View      domain.View `json:"view"`
}

type testAPI struct {
	t        *testing.T
	server   *httptest.Server
	recorder *memory.ProfileRecorder
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	recorder := memory.NewProfileRecorder()
	manager := session.NewManager(memory.NewStore())
	srv := httpapi.NewServer(manager, recorder)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return &testAPI{t: t, server: ts, recorder: recorder}
}

func (a *testAPI) do(method, path string, body any) (*http.Response, []byte) {
	a.t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(a.t, err)
	}
	req, err := http.NewRequest(method, a.server.URL+path, bytes.NewReader(payload))
	require.NoError(a.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.server.Client().Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(a.t, err)
	return resp, buf.Bytes()
}

func (a *testAPI) createSession(body any) sessionResponse {
	a.t.Helper()
	resp, data := a.do(http.MethodPost, "/v1/sessions", body)
	require.Equal(a.t, http.StatusCreated, resp.StatusCode, string(data))
	var sr sessionResponse
	require.NoError(a.t, json.Unmarshal(data, &sr))
	return sr
}

func (a *testAPI) answer(id, field, value string) (*http.Response, sessionResponse) {
	a.t.Helper()
	resp, data := a.do(http.MethodPost, fmt.Sprintf("/v1/sessions/%s/answers", id), map[string]string{
		"field": field,
		"value": value,
	})
	var sr sessionResponse
	_ = json.Unmarshal(data, &sr)
	return resp, sr
}

func TestCreateSession(t *testing.T) {
	api := newTestAPI(t)

	sr := api.createSession(nil)
	assert.NotEmpty(t, sr.SessionID)
	assert.Equal(t, domain.StepMotivation, sr.View.Step.ID)
	assert.Equal(t, 0, sr.View.Position)
	assert.Equal(t, 3, sr.View.Total)
}

func TestCreateSessionWithSeedAnswers(t *testing.T) {
	api := newTestAPI(t)

	sr := api.createSession(map[string]any{
		"answers": map[string]any{
			"motivation": "clear_goal",
			"life_stage": domain.StageCollege,
		},
	})
	assert.Equal(t, "clear_goal", sr.View.Answers[domain.FieldMotivation])
	assert.Greater(t, sr.View.Total, 3)
}

func TestCreateSessionRejectsUnknownSeedField(t *testing.T) {
	api := newTestAPI(t)
	resp, _ := api.do(http.MethodPost, "/v1/sessions", map[string]any{
		"answers": map[string]any{"favorite_color": "blue"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnswerAdvancesAndPersists(t *testing.T) {
	api := newTestAPI(t)
	sr := api.createSession(nil)

	resp, updated := api.answer(sr.SessionID, "motivation", "clear_goal")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.StepReadiness, updated.View.Step.ID)
	assert.Equal(t, 1, updated.View.Position)

	// State survives a fresh GET.
	getResp, data := api.do(http.MethodGet, "/v1/sessions/"+sr.SessionID, nil)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var got sessionResponse
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 1, got.View.Position)
	assert.Equal(t, "clear_goal", got.View.Answers[domain.FieldMotivation])
}

func TestAnswerUnknownField(t *testing.T) {
	api := newTestAPI(t)
	sr := api.createSession(nil)

	resp, _ := api.answer(sr.SessionID, "favorite_color", "blue")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestBackAndNext(t *testing.T) {
	api := newTestAPI(t)
	sr := api.createSession(nil)
	id := sr.SessionID

	_, _ = api.answer(id, "motivation", "clear_goal")

	resp, data := api.do(http.MethodPost, "/v1/sessions/"+id+"/back", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var afterBack sessionResponse
	require.NoError(t, json.Unmarshal(data, &afterBack))
	assert.Equal(t, 0, afterBack.View.Position)

	resp, data = api.do(http.MethodPost, "/v1/sessions/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var afterNext sessionResponse
	require.NoError(t, json.Unmarshal(data, &afterNext))
	assert.Equal(t, 1, afterNext.View.Position)
}

func TestNextBlockedByGate(t *testing.T) {
	api := newTestAPI(t)
	sr := api.createSession(nil)

	resp, _ := api.do(http.MethodPost, "/v1/sessions/"+sr.SessionID+"/next", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUnknownSessionIs404(t *testing.T) {
	api := newTestAPI(t)
	resp, _ := api.do(http.MethodGet, "/v1/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = api.do(http.MethodPost, "/v1/sessions/nope/submit", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitLifecycle(t *testing.T) {
	api := newTestAPI(t)
	sr := api.createSession(map[string]any{
		"answers": map[string]any{
			"motivation":           "clear_goal",
			"readiness":            "all_in",
			"life_stage":           domain.StageCollege,
			"college_year":         "third",
			"college_focus":        domain.FocusPlacements,
			"placement_prep":       "structured",
			"coding_confidence":    "confident",
			"interview_experience": "one_two",
			"daily_time":           "1_2hrs",
			"ambition_effort":      "dream_big_do_big",
			"stress_response":      "make_plan",
		},
	})
	id := sr.SessionID

	// Submitting before the commitment is refused.
	resp, _ := api.do(http.MethodPost, "/v1/sessions/"+id+"/submit", nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	_, _ = api.answer(id, "commitment", "yes")
	_, _ = api.answer(id, "name", "Ravi Kumar")
	_, _ = api.answer(id, "phone_number", "9000000000")
	_, _ = api.answer(id, "date_of_birth", "2003-06-01")

	resp, data := api.do(http.MethodPost, "/v1/sessions/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	require.Len(t, api.recorder.Calls(), 1)
	payload := api.recorder.Calls()[0]
	assert.Equal(t, domain.StageUndergraduate, payload.EducationStage)
	assert.Equal(t, 10, payload.WeeklyHours)
	assert.Contains(t, payload.GoalStatement, "placement")
	assert.True(t, payload.OnboardingAcceptedTerms)

	// The session is discarded after submission.
	resp, _ = api.do(http.MethodGet, "/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSubmitBackendFailureIs502AndKeepsSession(t *testing.T) {
	api := newTestAPI(t)
	api.recorder.FailWith = &domain.SubmissionError{Message: "backend rejected"}

	sr := api.createSession(map[string]any{
		"answers": map[string]any{
			"motivation":          "clear_goal",
			"readiness":           "all_in",
			"life_stage":          domain.StageWorking,
			"career_goal":         domain.CareerSwitchField,
			"transition_timeline": "this_year",
			"daily_time":          "2_4hrs",
			"ambition_effort":     "dream_big_do_big",
			"stress_response":     "make_plan",
			"commitment":          "yes",
			"name":                "Ravi Kumar",
			"phone_number":        "9000000000",
			"date_of_birth":       "1998-01-15",
		},
	})

	resp, _ := api.do(http.MethodPost, "/v1/sessions/"+sr.SessionID+"/submit", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	// Session and answers survive the failure for a retry.
	resp, data := api.do(http.MethodGet, "/v1/sessions/"+sr.SessionID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got sessionResponse
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Ravi Kumar", got.View.Answers[domain.FieldName])

	api.recorder.FailWith = nil
	resp, _ = api.do(http.MethodPost, "/v1/sessions/"+sr.SessionID+"/submit", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, api.recorder.Calls(), 2)
}
