package route

import (
	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/controller"
)

// RegisterChatRoutes registers the advisor chat routes
func RegisterChatRoutes(r *gin.RouterGroup, chatController *controller.ChatController) {
	r.POST("/chat", chatController.Send)
	r.GET("/chat/history", chatController.History)
	r.POST("/recommendations", chatController.Recommend)
}
