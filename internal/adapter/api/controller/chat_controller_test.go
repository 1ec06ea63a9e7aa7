package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtendere/education-consult/internal/adapter/api/dto"
	"github.com/mtendere/education-consult/internal/domain/chat"
	"github.com/mtendere/education-consult/internal/service/advisor"
	"github.com/mtendere/education-consult/pkg/logger"
)

type memChatRepository struct {
	turns     []chat.Turn
	appendErr error
}

func (m *memChatRepository) Append(ctx context.Context, turn *chat.Turn) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.turns = append(m.turns, *turn)
	return nil
}

func (m *memChatRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]chat.Turn, error) {
	if limit <= 0 {
		limit = chat.DefaultHistoryLimit
	}
	out := make([]chat.Turn, 0)
	for _, t := range m.turns {
		if t.SessionID == sessionID {
			out = append(out, t)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type stubResponder struct {
	reply advisor.Reply
}

func (s *stubResponder) Respond(ctx context.Context, message string) advisor.Reply {
	return s.reply
}

func (s *stubResponder) Recommend(ctx context.Context, level, field, budget, location string) string {
	return "Consider applying to partner universities in " + location + "."
}

func newChatTestRouter(repo chat.Repository, responder advisor.Responder) *gin.Engine {
	gin.SetMode(gin.TestMode)

	c := NewChatController(repo, responder, advisor.NewEscalationPolicy(), logger.NewLogger())

	r := gin.New()
	r.POST("/api/chat", c.Send)
	r.GET("/api/chat/history", c.History)
	r.POST("/api/recommendations", c.Recommend)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSendReturnsReplyAndAppendsTurn(t *testing.T) {
	repo := &memChatRepository{}
	router := newChatTestRouter(repo, &stubResponder{reply: advisor.Reply{
		Message:          "You can apply online through our portal.",
		ShouldEscalate:   false,
		SuggestedActions: []string{"View Universities"},
	}})

	w := postJSON(t, router, "/api/chat", dto.ChatRequest{
		Message:   "How do I apply?",
		SessionID: "session-1",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "You can apply online through our portal.", resp.Message)
	assert.False(t, resp.ShouldEscalate)
	assert.NotEmpty(t, resp.ContactURL)

	require.Len(t, repo.turns, 1)
	assert.Equal(t, "session-1", repo.turns[0].SessionID)
	assert.Equal(t, "How do I apply?", repo.turns[0].Message)
	assert.Equal(t, "You can apply online through our portal.", repo.turns[0].Response)
	assert.False(t, repo.turns[0].IsEscalated)
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	repo := &memChatRepository{}
	router := newChatTestRouter(repo, &stubResponder{reply: advisor.FallbackReply()})

	w := postJSON(t, router, "/api/chat", dto.ChatRequest{
		Message:   "",
		SessionID: "session-1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.turns)
}

func TestSendRejectsMissingSessionID(t *testing.T) {
	repo := &memChatRepository{}
	router := newChatTestRouter(repo, &stubResponder{reply: advisor.FallbackReply()})

	w := postJSON(t, router, "/api/chat", map[string]string{"message": "Hello"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.turns)
}

func TestSendDegradesToFallbackWithEscalation(t *testing.T) {
	repo := &memChatRepository{}
	router := newChatTestRouter(repo, &stubResponder{reply: advisor.FallbackReply()})

	w := postJSON(t, router, "/api/chat", dto.ChatRequest{
		Message:   "Anything",
		SessionID: "session-1",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
	assert.True(t, resp.ShouldEscalate)
	assert.Contains(t, resp.SuggestedActions, "Contact Support")

	// The fallback exchange is still logged.
	require.Len(t, repo.turns, 1)
	assert.True(t, repo.turns[0].IsEscalated)
}

func TestSendStillRepliesWhenAppendFails(t *testing.T) {
	repo := &memChatRepository{appendErr: errors.New("connection closed")}
	router := newChatTestRouter(repo, &stubResponder{reply: advisor.Reply{
		Message:          "Our consultants can help with visas.",
		SuggestedActions: []string{},
	}})

	w := postJSON(t, router, "/api/chat", dto.ChatRequest{
		Message:   "Visa question",
		SessionID: "session-1",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Our consultants can help with visas.", resp.Message)
}

func TestHistoryReturnsTurnsInOrder(t *testing.T) {
	now := time.Now().UTC()
	repo := &memChatRepository{turns: []chat.Turn{
		{ID: "a", SessionID: "session-1", Message: "first", Response: "r1", CreatedAt: now},
		{ID: "b", SessionID: "session-2", Message: "other", Response: "r2", CreatedAt: now},
		{ID: "c", SessionID: "session-1", Message: "second", Response: "r3", CreatedAt: now.Add(time.Second)},
	}}
	router := newChatTestRouter(repo, &stubResponder{})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history?sessionId=session-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ChatHistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "session-1", resp.SessionID)
	require.Len(t, resp.Turns, 2)
	assert.Equal(t, "first", resp.Turns[0].Message)
	assert.Equal(t, "second", resp.Turns[1].Message)
}

func TestHistoryUnknownSessionIsEmptyNotError(t *testing.T) {
	router := newChatTestRouter(&memChatRepository{}, &stubResponder{})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history?sessionId=never-seen", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ChatHistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Turns)
}

func TestHistoryRequiresSessionID(t *testing.T) {
	router := newChatTestRouter(&memChatRepository{}, &stubResponder{})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendRequiresLevelAndField(t *testing.T) {
	router := newChatTestRouter(&memChatRepository{}, &stubResponder{})

	w := postJSON(t, router, "/api/recommendations", map[string]string{"budget": "10000"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendReturnsAdvisoryText(t *testing.T) {
	router := newChatTestRouter(&memChatRepository{}, &stubResponder{})

	w := postJSON(t, router, "/api/recommendations", dto.RecommendationRequest{
		Level:    "bachelor",
		Field:    "engineering",
		Location: "Canada",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Recommendations, "Canada")
}
