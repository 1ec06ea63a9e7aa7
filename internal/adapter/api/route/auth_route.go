package route

import (
	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/controller"
	"github.com/mtendere/education-consult/pkg/auth"
)

// RegisterAuthRoutes registers the authentication routes
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/register", authController.Register)
		authGroup.GET("/user", auth.JWTAuthMiddleware(jwtService), authController.Me)
	}
}
