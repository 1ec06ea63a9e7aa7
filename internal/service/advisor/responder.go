package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mtendere/education-consult/pkg/logger"
	openai "github.com/sashabaranov/go-openai"
)

const (
	chatModel = openai.GPT4o

	systemPrompt = "You are a helpful education consultant AI assistant specializing in " +
		"international education for African students. Always be professional, encouraging, and informative."

	recommendationSystemPrompt = "You are an expert education consultant helping students " +
		"find the right universities for their goals."

	// defaultReply is used when the model answers but omits the message field.
	defaultReply = "I'm here to help with your education queries. How can I assist you today?"

	// fallbackReply is the fail-safe: any failure degrades to offering a human,
	// never to silence or a raw error.
	fallbackReply = "I'm having trouble processing your request right now. " +
		"Please try again or contact our team directly for assistance."

	recommendationFallback = "I'm unable to generate recommendations right now. " +
		"Please contact our education consultants for personalized assistance."
)

// responderTimeout bounds the reasoning call so a hung backend cannot hang the
// request.
const responderTimeout = 20 * time.Second

// Reply is the Responder's normalized output. Message is always non-empty.
type Reply struct {
	Message          string   `json:"message"`
	ShouldEscalate   bool     `json:"shouldEscalate"`
	SuggestedActions []string `json:"suggestedActions"`
}

// Responder maps free-text student questions to structured replies.
type Responder interface {
	Respond(ctx context.Context, message string) Reply
	Recommend(ctx context.Context, level, field, budget, location string) string
}

// completionClient is the slice of the OpenAI client the responder needs.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIResponder calls the OpenAI chat completion API in JSON mode and
// validates the result against the Reply shape. It never returns an error:
// failures of any kind collapse into the fallback reply with escalation set.
type OpenAIResponder struct {
	client  completionClient
	timeout time.Duration
	logger  logger.Logger
}

// NewOpenAIResponder creates a responder using OPENAI_API_KEY from the
// environment.
func NewOpenAIResponder(log logger.Logger) *OpenAIResponder {
	return &OpenAIResponder{
		client:  openai.NewClient(os.Getenv("OPENAI_API_KEY")),
		timeout: responderTimeout,
		logger:  log,
	}
}

// Respond answers a single student message. Each call is independent; no
// prior turns are sent to the model.
func (r *OpenAIResponder) Respond(ctx context.Context, message string) Reply {
	prompt := fmt.Sprintf(`You are an AI education consultant assistant for Mtendere Education Consult, helping African students with international education opportunities.

User message: %q

Please provide a helpful response about education consulting, university applications, scholarships, or study abroad opportunities. If the query is complex or requires personal consultation, suggest escalating to WhatsApp for human assistance.

Respond with JSON format:
{
  "message": "Your helpful response",
  "shouldEscalate": boolean (true if complex query needs human help),
  "suggestedActions": ["action1", "action2"] (optional quick action buttons)
}`, message)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		MaxTokens: 500,
	})
	if err != nil {
		r.logger.Error("responder call failed", "error", err)
		return FallbackReply()
	}

	if len(resp.Choices) == 0 {
		r.logger.Error("responder returned no choices")
		return FallbackReply()
	}

	var reply Reply
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &reply); err != nil {
		r.logger.Error("responder returned unparseable output", "error", err)
		return FallbackReply()
	}

	if reply.Message == "" {
		reply.Message = defaultReply
	}
	if reply.SuggestedActions == nil {
		reply.SuggestedActions = []string{}
	}

	return reply
}

// Recommend produces free-text university guidance for the given preferences.
func (r *OpenAIResponder) Recommend(ctx context.Context, level, field, budget, location string) string {
	if budget == "" {
		budget = "Not specified"
	}
	if location == "" {
		location = "Any"
	}

	prompt := fmt.Sprintf(`Generate university recommendations for a student with these preferences:
- Study Level: %s
- Field of Study: %s
- Budget: %s
- Preferred Location: %s

Provide helpful guidance about suitable universities and application strategies.`, level, field, budget, location)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: recommendationSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: 400,
	})
	if err != nil {
		r.logger.Error("recommendation call failed", "error", err)
		return recommendationFallback
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "I'd be happy to help you find suitable universities. Please provide more details about your preferences."
	}

	return resp.Choices[0].Message.Content
}

// FallbackReply is the payload returned whenever the reasoning engine fails.
func FallbackReply() Reply {
	return Reply{
		Message:          fallbackReply,
		ShouldEscalate:   true,
		SuggestedActions: []string{"Contact Support", "Try Again"},
	}
}
