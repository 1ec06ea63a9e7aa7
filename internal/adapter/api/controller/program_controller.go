package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/dto"
	"github.com/mtendere/education-consult/internal/adapter/repository"
	programdomain "github.com/mtendere/education-consult/internal/domain/program"
	"github.com/mtendere/education-consult/pkg/logger"
)

// ProgramController handles the program catalog endpoints.
type ProgramController struct {
	programRepo programdomain.Repository
	logger      logger.Logger
}

// NewProgramController creates a new ProgramController instance.
func NewProgramController(programRepo programdomain.Repository, logger logger.Logger) *ProgramController {
	return &ProgramController{
		programRepo: programRepo,
		logger:      logger,
	}
}

// List returns the public program catalog
// @Summary List programs
// @Description Returns active programs, optionally filtered by university, level and field
// @Tags programs
// @Produce json
// @Param universityId query int false "University filter"
// @Param level query string false "Level filter"
// @Param field query string false "Field filter"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} dto.ProgramResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /programs [get]
func (c *ProgramController) List(ctx *gin.Context) {
	universityID, _ := strconv.Atoi(ctx.DefaultQuery("universityId", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	programs, err := c.programRepo.List(ctx.Request.Context(), programdomain.Filter{
		UniversityID: universityID,
		Level:        ctx.Query("level"),
		Field:        ctx.Query("field"),
		Limit:        limit,
	})
	if err != nil {
		c.logger.Error("failed to list programs", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch programs", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProgramListResponse(programs))
}

// Create adds a program
// @Summary Create a program
// @Description Creates a new program under a university
// @Tags admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param program body dto.ProgramRequest true "Program data"
// @Success 201 {object} dto.ProgramResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/programs [post]
func (c *ProgramController) Create(ctx *gin.Context) {
	var req dto.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid program data", err.Error()))
		return
	}

	p, err := programdomain.NewProgram(req.UniversityID, req.Name, programdomain.Level(req.Level), req.Field)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid program data", err.Error()))
		return
	}
	req.Apply(p)

	if err := c.programRepo.Create(ctx.Request.Context(), p); err != nil {
		c.logger.Error("failed to create program", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to create program", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProgramResponse(p))
}

// Update rewrites a program
// @Summary Update a program
// @Description Updates an existing program
// @Tags admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "Program ID"
// @Param program body dto.ProgramRequest true "Program data"
// @Success 200 {object} dto.ProgramResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/programs/{id} [put]
func (c *ProgramController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid id", err.Error()))
		return
	}

	var req dto.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid program data", err.Error()))
		return
	}

	p, err := c.programRepo.FindByID(ctx.Request.Context(), id)
	if err != nil {
		if err == repository.ErrProgramNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "program not found", ""))
			return
		}
		c.logger.Error("failed to find program", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch program", err.Error()))
		return
	}

	req.Apply(p)

	if err := c.programRepo.Update(ctx.Request.Context(), p); err != nil {
		c.logger.Error("failed to update program", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to update program", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProgramResponse(p))
}

// Delete removes a program
// @Summary Delete a program
// @Description Removes a program from the catalog
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path int true "Program ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/programs/{id} [delete]
func (c *ProgramController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid id", err.Error()))
		return
	}

	if err := c.programRepo.Delete(ctx.Request.Context(), id); err != nil {
		if err == repository.ErrProgramNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "program not found", ""))
			return
		}
		c.logger.Error("failed to delete program", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to delete program", err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}
