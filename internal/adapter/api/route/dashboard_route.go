package route

import (
	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/controller"
	"github.com/mtendere/education-consult/pkg/auth"
)

// RegisterDashboardRoutes registers the admin dashboard routes
func RegisterDashboardRoutes(r *gin.RouterGroup, dashboardController *controller.DashboardController, jwtService *auth.JWTService) {
	admin := r.Group("/admin/dashboard")
	admin.Use(auth.JWTAuthMiddleware(jwtService), auth.RoleAuthMiddleware("admin"))
	{
		admin.GET("/stats", dashboardController.Stats)
	}
}
