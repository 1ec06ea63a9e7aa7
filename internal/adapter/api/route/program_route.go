package route

import (
	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/controller"
	"github.com/mtendere/education-consult/pkg/auth"
)

// RegisterProgramRoutes registers the public catalog and admin routes
// for academic programs
func RegisterProgramRoutes(r *gin.RouterGroup, programController *controller.ProgramController, jwtService *auth.JWTService) {
	r.GET("/programs", programController.List)

	admin := r.Group("/admin/programs")
	admin.Use(auth.JWTAuthMiddleware(jwtService), auth.RoleAuthMiddleware("admin"))
	{
		admin.POST("", programController.Create)
		admin.PUT("/:id", programController.Update)
		admin.DELETE("/:id", programController.Delete)
	}
}
