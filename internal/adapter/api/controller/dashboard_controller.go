package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/dto"
	applicationdomain "github.com/mtendere/education-consult/internal/domain/application"
	inquirydomain "github.com/mtendere/education-consult/internal/domain/inquiry"
	universitydomain "github.com/mtendere/education-consult/internal/domain/university"
	userdomain "github.com/mtendere/education-consult/internal/domain/user"
	"github.com/mtendere/education-consult/pkg/logger"
)

// DashboardController aggregates the admin dashboard counters.
type DashboardController struct {
	applicationRepo applicationdomain.Repository
	userRepo        userdomain.Repository
	universityRepo  universitydomain.Repository
	inquiryRepo     inquirydomain.Repository
	logger          logger.Logger
}

// NewDashboardController creates a new DashboardController instance.
func NewDashboardController(
	applicationRepo applicationdomain.Repository,
	userRepo userdomain.Repository,
	universityRepo universitydomain.Repository,
	inquiryRepo inquirydomain.Repository,
	logger logger.Logger,
) *DashboardController {
	return &DashboardController{
		applicationRepo: applicationRepo,
		userRepo:        userRepo,
		universityRepo:  universityRepo,
		inquiryRepo:     inquiryRepo,
		logger:          logger,
	}
}

// Stats returns the dashboard counters
// @Summary Dashboard statistics
// @Description Returns the headline counters shown on the admin dashboard
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()

	totalApplications, err := c.applicationRepo.Count(reqCtx)
	if err != nil {
		c.logger.Error("failed to count applications", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch dashboard stats", err.Error()))
		return
	}

	activeStudents, err := c.userRepo.CountByRole(reqCtx, userdomain.RoleUser)
	if err != nil {
		c.logger.Error("failed to count students", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch dashboard stats", err.Error()))
		return
	}

	partnerUniversities, err := c.universityRepo.CountActive(reqCtx)
	if err != nil {
		c.logger.Error("failed to count universities", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch dashboard stats", err.Error()))
		return
	}

	totalInquiries, err := c.inquiryRepo.Count(reqCtx)
	if err != nil {
		c.logger.Error("failed to count inquiries", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch dashboard stats", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.DashboardStatsResponse{
		TotalApplications:   totalApplications,
		ActiveStudents:      activeStudents,
		PartnerUniversities: partnerUniversities,
		TotalInquiries:      totalInquiries,
	})
}
