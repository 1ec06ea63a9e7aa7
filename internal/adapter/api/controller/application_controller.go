package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/dto"
	"github.com/mtendere/education-consult/internal/adapter/repository"
	applicationdomain "github.com/mtendere/education-consult/internal/domain/application"
	"github.com/mtendere/education-consult/internal/service/mailer"
	"github.com/mtendere/education-consult/pkg/auth"
	"github.com/mtendere/education-consult/pkg/logger"
)

// ApplicationController handles student application endpoints.
type ApplicationController struct {
	applicationRepo applicationdomain.Repository
	mailer          mailer.Mailer
	logger          logger.Logger
}

// NewApplicationController creates a new ApplicationController instance.
func NewApplicationController(applicationRepo applicationdomain.Repository, mailer mailer.Mailer, logger logger.Logger) *ApplicationController {
	return &ApplicationController{
		applicationRepo: applicationRepo,
		mailer:          mailer,
		logger:          logger,
	}
}

// ListMine returns the authenticated student's applications
// @Summary List own applications
// @Description Returns the applications submitted by the authenticated user
// @Tags applications
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.ApplicationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/applications [get]
func (c *ApplicationController) ListMine(ctx *gin.Context) {
	userID := auth.CurrentUserID(ctx)

	applications, err := c.applicationRepo.List(ctx.Request.Context(), applicationdomain.Filter{
		UserID: userID,
	})
	if err != nil {
		c.logger.Error("failed to list user applications", "user_id", userID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch applications", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToApplicationListResponse(applications))
}

// Create submits a new application
// @Summary Submit an application
// @Description Creates an application for the authenticated user
// @Tags applications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param application body dto.ApplicationRequest true "Application data"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /user/applications [post]
func (c *ApplicationController) Create(ctx *gin.Context) {
	var req dto.ApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid application data", err.Error()))
		return
	}

	userID := auth.CurrentUserID(ctx)

	a, err := applicationdomain.NewApplication(userID, req.UniversityID, req.ProgramID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid application data", err.Error()))
		return
	}
	a.PersonalInfo = req.PersonalInfo
	a.Documents = req.Documents

	if err := c.applicationRepo.Create(ctx.Request.Context(), a); err != nil {
		c.logger.Error("failed to create application", "user_id", userID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to create application", err.Error()))
		return
	}

	go c.mailer.NotifyAdmin(
		"New Application Submitted",
		fmt.Sprintf("Application #%d was submitted for program %d at university %d.", a.ID, a.ProgramID, a.UniversityID),
	)

	ctx.JSON(http.StatusCreated, dto.ToApplicationResponse(a))
}

// ListAll returns applications for review
// @Summary List applications
// @Description Returns applications, optionally filtered by status
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param status query string false "Status filter"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} dto.ApplicationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/applications [get]
func (c *ApplicationController) ListAll(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	applications, err := c.applicationRepo.List(ctx.Request.Context(), applicationdomain.Filter{
		Status: ctx.Query("status"),
		Limit:  limit,
	})
	if err != nil {
		c.logger.Error("failed to list applications", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch applications", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToApplicationListResponse(applications))
}

// UpdateStatus moves an application through the review pipeline
// @Summary Update application status
// @Description Sets the review status of an application
// @Tags admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "Application ID"
// @Param status body dto.ApplicationStatusRequest true "New status"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/applications/{id} [put]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid id", err.Error()))
		return
	}

	var req dto.ApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "status is required", err.Error()))
		return
	}

	status := applicationdomain.Status(req.Status)
	if !applicationdomain.ValidStatus(status) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid application status", req.Status))
		return
	}

	a, err := c.applicationRepo.UpdateStatus(ctx.Request.Context(), id, status)
	if err != nil {
		if err == repository.ErrApplicationNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "application not found", ""))
			return
		}
		c.logger.Error("failed to update application status", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update application", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToApplicationResponse(a))
}
