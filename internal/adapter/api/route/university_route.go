package route

import (
	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/controller"
	"github.com/mtendere/education-consult/pkg/auth"
)

// RegisterUniversityRoutes registers the public catalog and admin routes
// for universities
func RegisterUniversityRoutes(r *gin.RouterGroup, universityController *controller.UniversityController, jwtService *auth.JWTService) {
	universities := r.Group("/universities")
	{
		universities.GET("", universityController.List)
		universities.GET("/:id", universityController.Get)
	}

	admin := r.Group("/admin/universities")
	admin.Use(auth.JWTAuthMiddleware(jwtService), auth.RoleAuthMiddleware("admin"))
	{
		admin.POST("", universityController.Create)
		admin.PUT("/:id", universityController.Update)
		admin.DELETE("/:id", universityController.Delete)
	}
}
