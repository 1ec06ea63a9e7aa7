package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/dto"
	"github.com/mtendere/education-consult/internal/adapter/repository"
	universitydomain "github.com/mtendere/education-consult/internal/domain/university"
	"github.com/mtendere/education-consult/pkg/logger"
)

// UniversityController handles the university catalog endpoints.
type UniversityController struct {
	universityRepo universitydomain.Repository
	logger         logger.Logger
}

// NewUniversityController creates a new UniversityController instance.
func NewUniversityController(universityRepo universitydomain.Repository, logger logger.Logger) *UniversityController {
	return &UniversityController{
		universityRepo: universityRepo,
		logger:         logger,
	}
}

// List returns the public university catalog
// @Summary List universities
// @Description Returns active universities, optionally filtered by search and country
// @Tags universities
// @Produce json
// @Param search query string false "Name search"
// @Param country query string false "Country filter"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} dto.UniversityResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /universities [get]
func (c *UniversityController) List(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	universities, err := c.universityRepo.List(ctx.Request.Context(), universitydomain.Filter{
		Search:  ctx.Query("search"),
		Country: ctx.Query("country"),
		Limit:   limit,
	})
	if err != nil {
		c.logger.Error("failed to list universities", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch universities", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUniversityListResponse(universities))
}

// Get returns one university
// @Summary Get a university
// @Description Returns a university by its ID
// @Tags universities
// @Produce json
// @Param id path int true "University ID"
// @Success 200 {object} dto.UniversityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /universities/{id} [get]
func (c *UniversityController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid id", err.Error()))
		return
	}

	u, err := c.universityRepo.FindByID(ctx.Request.Context(), id)
	if err != nil {
		if err == repository.ErrUniversityNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "university not found", ""))
			return
		}
		c.logger.Error("failed to find university", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch university", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUniversityResponse(u))
}

// Create adds a university
// @Summary Create a university
// @Description Creates a new university in the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param university body dto.UniversityRequest true "University data"
// @Success 201 {object} dto.UniversityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/universities [post]
func (c *UniversityController) Create(ctx *gin.Context) {
	var req dto.UniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid university data", err.Error()))
		return
	}

	u, err := universitydomain.NewUniversity(req.Name, req.Location, req.Country)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid university data", err.Error()))
		return
	}
	req.Apply(u)

	if err := c.universityRepo.Create(ctx.Request.Context(), u); err != nil {
		c.logger.Error("failed to create university", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to create university", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUniversityResponse(u))
}

// Update rewrites a university
// @Summary Update a university
// @Description Updates an existing university
// @Tags admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "University ID"
// @Param university body dto.UniversityRequest true "University data"
// @Success 200 {object} dto.UniversityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/universities/{id} [put]
func (c *UniversityController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid id", err.Error()))
		return
	}

	var req dto.UniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid university data", err.Error()))
		return
	}

	u, err := c.universityRepo.FindByID(ctx.Request.Context(), id)
	if err != nil {
		if err == repository.ErrUniversityNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "university not found", ""))
			return
		}
		c.logger.Error("failed to find university", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch university", err.Error()))
		return
	}

	req.Apply(u)

	if err := c.universityRepo.Update(ctx.Request.Context(), u); err != nil {
		c.logger.Error("failed to update university", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update university", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUniversityResponse(u))
}

// Delete removes a university
// @Summary Delete a university
// @Description Removes a university and its programs
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "University ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/universities/{id} [delete]
func (c *UniversityController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid id", err.Error()))
		return
	}

	if err := c.universityRepo.Delete(ctx.Request.Context(), id); err != nil {
		if err == repository.ErrUniversityNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "university not found", ""))
			return
		}
		c.logger.Error("failed to delete university", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to delete university", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
