package route

import (
	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/controller"
	"github.com/mtendere/education-consult/pkg/auth"
)

// RegisterScholarshipRoutes registers the public listing and admin routes
// for scholarships
func RegisterScholarshipRoutes(r *gin.RouterGroup, scholarshipController *controller.ScholarshipController, jwtService *auth.JWTService) {
	r.GET("/scholarships", scholarshipController.List)

	admin := r.Group("/admin/scholarships")
	admin.Use(auth.JWTAuthMiddleware(jwtService), auth.RoleAuthMiddleware("admin"))
	{
		admin.POST("", scholarshipController.Create)
		admin.PUT("/:id", scholarshipController.Update)
		admin.DELETE("/:id", scholarshipController.Delete)
	}
}
