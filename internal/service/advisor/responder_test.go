package advisor

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"

	"github.com/mtendere/education-consult/pkg/logger"
)

type fakeCompletionClient struct {
	content   string
	err       error
	noChoices bool
}

func (f *fakeCompletionClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	if f.noChoices {
		return openai.ChatCompletionResponse{}, nil
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func newTestResponder(client completionClient) *OpenAIResponder {
	return &OpenAIResponder{
		client:  client,
		timeout: responderTimeout,
		logger:  logger.NewLogger(),
	}
}

func TestRespondParsesStructuredReply(t *testing.T) {
	r := newTestResponder(&fakeCompletionClient{
		content: `{"message":"Apply before the January deadline.","shouldEscalate":false,"suggestedActions":["View Programs"]}`,
	})

	reply := r.Respond(context.Background(), "When should I apply?")

	assert.Equal(t, "Apply before the January deadline.", reply.Message)
	assert.False(t, reply.ShouldEscalate)
	assert.Equal(t, []string{"View Programs"}, reply.SuggestedActions)
}

func TestRespondFallsBackOnError(t *testing.T) {
	r := newTestResponder(&fakeCompletionClient{err: errors.New("connection refused")})

	reply := r.Respond(context.Background(), "Hello")

	assert.Equal(t, FallbackReply(), reply)
	assert.True(t, reply.ShouldEscalate)
	assert.Contains(t, reply.SuggestedActions, "Contact Support")
	assert.NotEmpty(t, reply.Message)
}

func TestRespondFallsBackOnUnparseableOutput(t *testing.T) {
	r := newTestResponder(&fakeCompletionClient{content: "sorry, plain text"})

	reply := r.Respond(context.Background(), "Hello")

	assert.Equal(t, FallbackReply(), reply)
}

func TestRespondFallsBackOnEmptyChoices(t *testing.T) {
	r := newTestResponder(&fakeCompletionClient{noChoices: true})

	reply := r.Respond(context.Background(), "Hello")

	assert.Equal(t, FallbackReply(), reply)
}

func TestRespondSubstitutesDefaultForEmptyMessage(t *testing.T) {
	r := newTestResponder(&fakeCompletionClient{
		content: `{"message":"","shouldEscalate":false}`,
	})

	reply := r.Respond(context.Background(), "Hello")

	assert.Equal(t, defaultReply, reply.Message)
	assert.NotNil(t, reply.SuggestedActions)
	assert.Empty(t, reply.SuggestedActions)
}

func TestRecommendReturnsModelText(t *testing.T) {
	r := newTestResponder(&fakeCompletionClient{content: "Consider the University of Cape Town."})

	text := r.Recommend(context.Background(), "bachelor", "computer science", "", "")

	assert.Equal(t, "Consider the University of Cape Town.", text)
}

func TestRecommendFallsBackOnError(t *testing.T) {
	r := newTestResponder(&fakeCompletionClient{err: errors.New("timeout")})

	text := r.Recommend(context.Background(), "master", "law", "20000", "UK")

	assert.Equal(t, recommendationFallback, text)
}
