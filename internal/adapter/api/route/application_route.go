package route

import (
	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/controller"
	"github.com/mtendere/education-consult/pkg/auth"
)

// RegisterApplicationRoutes registers the student and admin routes
// for applications
func RegisterApplicationRoutes(r *gin.RouterGroup, applicationController *controller.ApplicationController, jwtService *auth.JWTService) {
	user := r.Group("/user/applications")
	user.Use(auth.JWTAuthMiddleware(jwtService))
	{
		user.GET("", applicationController.ListMine)
		user.POST("", applicationController.Create)
	}

	admin := r.Group("/admin/applications")
	admin.Use(auth.JWTAuthMiddleware(jwtService), auth.RoleAuthMiddleware("admin"))
	{
		admin.GET("", applicationController.ListAll)
		admin.PUT("/:id", applicationController.UpdateStatus)
	}
}
