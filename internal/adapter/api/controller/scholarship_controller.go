package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/dto"
	"github.com/mtendere/education-consult/internal/adapter/repository"
	scholarshipdomain "github.com/mtendere/education-consult/internal/domain/scholarship"
	"github.com/mtendere/education-consult/pkg/logger"
)

// ScholarshipController handles the scholarship listing endpoints.
type ScholarshipController struct {
	scholarshipRepo scholarshipdomain.Repository
	logger          logger.Logger
}

// NewScholarshipController creates a new ScholarshipController instance.
func NewScholarshipController(scholarshipRepo scholarshipdomain.Repository, logger logger.Logger) *ScholarshipController {
	return &ScholarshipController{
		scholarshipRepo: scholarshipRepo,
		logger:          logger,
	}
}

// List returns the public scholarship listings
// @Summary List scholarships
// @Description Returns active scholarships ordered by deadline
// @Tags scholarships
// @Produce json
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} dto.ScholarshipResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /scholarships [get]
func (c *ScholarshipController) List(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	scholarships, err := c.scholarshipRepo.List(ctx.Request.Context(), limit)
	if err != nil {
		c.logger.Error("failed to list scholarships", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch scholarships", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScholarshipListResponse(scholarships))
}

// Create adds a scholarship
// @Summary Create a scholarship
// @Description Creates a new scholarship listing
// @Tags admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param scholarship body dto.ScholarshipRequest true "Scholarship data"
// @Success 201 {object} dto.ScholarshipResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/scholarships [post]
func (c *ScholarshipController) Create(ctx *gin.Context) {
	var req dto.ScholarshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid scholarship data", err.Error()))
		return
	}

	s, err := scholarshipdomain.NewScholarship(req.Name, req.Provider)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid scholarship data", err.Error()))
		return
	}
	req.Apply(s)

	if err := c.scholarshipRepo.Create(ctx.Request.Context(), s); err != nil {
		c.logger.Error("failed to create scholarship", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to create scholarship", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToScholarshipResponse(s))
}

// Update rewrites a scholarship
// @Summary Update a scholarship
// @Description Updates an existing scholarship listing
// @Tags admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "Scholarship ID"
// @Param scholarship body dto.ScholarshipRequest true "Scholarship data"
// @Success 200 {object} dto.ScholarshipResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/scholarships/{id} [put]
func (c *ScholarshipController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid id", err.Error()))
		return
	}

	var req dto.ScholarshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid scholarship data", err.Error()))
		return
	}

	s, err := c.scholarshipRepo.FindByID(ctx.Request.Context(), id)
	if err != nil {
		if err == repository.ErrScholarshipNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "scholarship not found", ""))
			return
		}
		c.logger.Error("failed to find scholarship", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch scholarship", err.Error()))
		return
	}

	req.Apply(s)

	if err := c.scholarshipRepo.Update(ctx.Request.Context(), s); err != nil {
		c.logger.Error("failed to update scholarship", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update scholarship", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToScholarshipResponse(s))
}

// Delete removes a scholarship
// @Summary Delete a scholarship
// @Description Removes a scholarship listing
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "Scholarship ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/scholarships/{id} [delete]
func (c *ScholarshipController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid id", err.Error()))
		return
	}

	if err := c.scholarshipRepo.Delete(ctx.Request.Context(), id); err != nil {
		if err == repository.ErrScholarshipNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "scholarship not found", ""))
			return
		}
		c.logger.Error("failed to delete scholarship", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to delete scholarship", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
