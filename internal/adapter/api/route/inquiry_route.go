package route

import (
	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/controller"
	"github.com/mtendere/education-consult/pkg/auth"
)

// RegisterInquiryRoutes registers the public contact form and its admin view
func RegisterInquiryRoutes(r *gin.RouterGroup, inquiryController *controller.InquiryController, jwtService *auth.JWTService) {
	r.POST("/inquiries", inquiryController.Create)

	admin := r.Group("/admin/inquiries")
	admin.Use(auth.JWTAuthMiddleware(jwtService), auth.RoleAuthMiddleware("admin"))
	{
		admin.GET("", inquiryController.List)
	}
}
