package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/dto"
	inquirydomain "github.com/mtendere/education-consult/internal/domain/inquiry"
	"github.com/mtendere/education-consult/internal/service/mailer"
	"github.com/mtendere/education-consult/pkg/logger"
)

// InquiryController handles the public contact form and its admin view.
type InquiryController struct {
	inquiryRepo inquirydomain.Repository
	mailer      mailer.Mailer
	logger      logger.Logger
}

// NewInquiryController creates a new InquiryController instance.
func NewInquiryController(inquiryRepo inquirydomain.Repository, mailer mailer.Mailer, logger logger.Logger) *InquiryController {
	return &InquiryController{
		inquiryRepo: inquiryRepo,
		mailer:      mailer,
		logger:      logger,
	}
}

// Create records a contact inquiry
// @Summary Submit an inquiry
// @Description Records a message from the public contact form
// @Tags inquiries
// @Accept json
// @Produce json
// @Param inquiry body dto.InquiryRequest true "Inquiry data"
// @Success 201 {object} dto.InquiryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /inquiries [post]
func (c *InquiryController) Create(ctx *gin.Context) {
	var req dto.InquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid inquiry data", err.Error()))
		return
	}

	i, err := inquirydomain.NewInquiry(req.Name, req.Email, req.Message)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid inquiry data", err.Error()))
		return
	}
	i.Phone = req.Phone
	i.Subject = req.Subject

	if err := c.inquiryRepo.Create(ctx.Request.Context(), i); err != nil {
		c.logger.Error("failed to create inquiry", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to create inquiry", err.Error()))
		return
	}

	go c.mailer.NotifyAdmin(
		"New Contact Inquiry",
		fmt.Sprintf("From: %s <%s>\n\n%s", i.Name, i.Email, i.Message),
	)

	ctx.JSON(http.StatusCreated, dto.ToInquiryResponse(i))
}

// List returns inquiries for the back-office
// @Summary List inquiries
// @Description Returns inquiries, optionally filtered by status
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param status query string false "Status filter"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} dto.InquiryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/inquiries [get]
func (c *InquiryController) List(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	inquiries, err := c.inquiryRepo.List(ctx.Request.Context(), ctx.Query("status"), limit)
	if err != nil {
		c.logger.Error("failed to list inquiries", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch inquiries", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInquiryListResponse(inquiries))
}
