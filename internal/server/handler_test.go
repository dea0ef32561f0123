package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/server/internal/agent/classify"
	"github.com/skillbridge/server/internal/agent/model"
	"github.com/skillbridge/server/internal/agent/orchestrator"
	"github.com/skillbridge/server/internal/agent/repo"
)

type echoInvoker struct{}

func (echoInvoker) Invoke(_ context.Context, id model.SpecialistID, message, _ string) (*model.Reply, error) {
	return &model.Reply{Text: "reply from " + string(id)}, nil
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	orch, err := orchestrator.New(orchestrator.Config{
		Classifier:    classify.New(model.ClassifierConfig{}),
		Profiles:      repo.NewMemoryProfileStore(),
		Onboardings:   repo.NewMemoryOnboardingStore(),
		Conversations: repo.NewMemoryConversationRepository(),
		Assessments:   repo.NewMemoryAssessmentChecker(),
		Invoker:       echoInvoker{},
	})
	require.NoError(t, err)
	return New(orch).Routes()
}

func postChat(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(b))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestChatFirstContact(t *testing.T) {
	h := newTestHandler(t)

	rec := postChat(t, h, chatRequest{UserID: "u1", Message: "hello"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "router", resp.Agent)
	assert.NotEmpty(t, resp.Message)
	assert.False(t, resp.OnboardingCompleted)
}

func TestChatMissingFields(t *testing.T) {
	h := newTestHandler(t)

	rec := postChat(t, h, chatRequest{Message: "hello"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postChat(t, h, chatRequest{UserID: "u1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatInvalidBody(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatUnknownAgent(t *testing.T) {
	h := newTestHandler(t)

	rec := postChat(t, h, chatRequest{UserID: "u1", Message: "hello", Agent: "astrologer"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatExplicitAgent(t *testing.T) {
	// Onboarded profile so routing applies.
	profiles := repo.NewMemoryProfileStore()
	p := model.NewUserProfile("u1")
	p.OnboardingCompleted = true
	require.NoError(t, profiles.Put(context.Background(), p))

	orch, err := orchestrator.New(orchestrator.Config{
		Classifier:    classify.New(model.ClassifierConfig{}),
		Profiles:      profiles,
		Onboardings:   repo.NewMemoryOnboardingStore(),
		Conversations: repo.NewMemoryConversationRepository(),
		Assessments:   repo.NewMemoryAssessmentChecker(),
		Invoker:       echoInvoker{},
	})
	require.NoError(t, err)
	h := New(orch).Routes()

	rec := postChat(t, h, chatRequest{UserID: "u1", Message: "hi", Agent: "health_coach"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "health_coach", resp.Agent)
	require.NotNil(t, resp.Routing)
	assert.Equal(t, 1.0, resp.Routing.Confidence)
}
