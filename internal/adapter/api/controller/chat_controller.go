package controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/dto"
	"github.com/mtendere/education-consult/internal/domain/chat"
	"github.com/mtendere/education-consult/internal/service/advisor"
	"github.com/mtendere/education-consult/pkg/logger"
)

// ChatController handles the public AI chat widget.
type ChatController struct {
	chatRepo  chat.Repository
	responder advisor.Responder
	policy    *advisor.EscalationPolicy
	logger    logger.Logger
}

// NewChatController creates a new ChatController instance.
func NewChatController(chatRepo chat.Repository, responder advisor.Responder, policy *advisor.EscalationPolicy, logger logger.Logger) *ChatController {
	return &ChatController{
		chatRepo:  chatRepo,
		responder: responder,
		policy:    policy,
		logger:    logger,
	}
}

// Send processes one chat turn
// @Summary Send a chat message
// @Description Answers a visitor's question and records the exchange in the conversation log
// @Tags chat
// @Accept json
// @Produce json
// @Param chat body dto.ChatRequest true "Message and session identifier"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /chat [post]
func (c *ChatController) Send(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "message and sessionId are required", err.Error()))
		return
	}

	reply := c.responder.Respond(ctx.Request.Context(), req.Message)

	turn, err := chat.NewTurn(req.SessionID, req.Message, reply.Message, reply.ShouldEscalate, nil)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid chat turn", err.Error()))
		return
	}

	// The reply was already computed; a failed log write must not take it
	// away from the user, and a disconnected client must not abort the write.
	if err := c.chatRepo.Append(context.WithoutCancel(ctx.Request.Context()), turn); err != nil {
		c.logger.Error("failed to append chat turn", "session_id", req.SessionID, "error", err)
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{
		Message:          reply.Message,
		ShouldEscalate:   c.policy.PresentHandoff(reply.ShouldEscalate),
		SuggestedActions: reply.SuggestedActions,
		ContactURL:       c.policy.ContactURL(),
	})
}

// History returns the conversation log of a session
// @Summary Get chat history
// @Description Returns the stored turns of a session in ascending creation order
// @Tags chat
// @Produce json
// @Param sessionId query string true "Session identifier"
// @Param limit query int false "Maximum number of turns (default 50)"
// @Success 200 {object} dto.ChatHistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/history [get]
func (c *ChatController) History(ctx *gin.Context) {
	sessionID := ctx.Query("sessionId")
	if sessionID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "sessionId is required", ""))
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	turns, err := c.chatRepo.ListBySession(ctx.Request.Context(), sessionID, limit)
	if err != nil {
		c.logger.Error("failed to list chat history", "session_id", sessionID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch chat history", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChatHistoryResponse(sessionID, turns))
}

// Recommend generates university guidance
// @Summary Generate university recommendations
// @Description Produces advisory text for the given study preferences
// @Tags chat
// @Accept json
// @Produce json
// @Param preferences body dto.RecommendationRequest true "Study preferences"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /recommendations [post]
func (c *ChatController) Recommend(ctx *gin.Context) {
	var req dto.RecommendationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "level and field are required", err.Error()))
		return
	}

	recommendations := c.responder.Recommend(ctx.Request.Context(), req.Level, req.Field, req.Budget, req.Location)

	ctx.JSON(http.StatusOK, dto.RecommendationResponse{
		Recommendations: recommendations,
	})
}
