package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mtendere/education-consult/internal/adapter/api/dto"
	"github.com/mtendere/education-consult/internal/adapter/repository"
	userdomain "github.com/mtendere/education-consult/internal/domain/user"
	"github.com/mtendere/education-consult/pkg/auth"
	"github.com/mtendere/education-consult/pkg/logger"
)

// AuthController handles login, registration and the current-user endpoint.
type AuthController struct {
	userRepo   userdomain.Repository
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(userRepo userdomain.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a user
// @Summary Log in
// @Description Validates credentials and issues a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid credentials payload", err.Error()))
		return
	}

	u, err := c.userRepo.FindByEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "invalid email or password", ""))
			return
		}
		c.logger.Error("failed to find user", "email", req.Email, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to authenticate", err.Error()))
		return
	}

	if err := u.CheckPassword(req.Password); err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "invalid email or password", ""))
		return
	}

	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("failed to generate token", "user_id", u.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to issue token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(u),
	})
}

// Register creates a student account
// @Summary Register
// @Description Creates a student account and issues a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param account body dto.RegisterRequest true "Account data"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid account data", err.Error()))
		return
	}

	if _, err := c.userRepo.FindByEmail(ctx.Request.Context(), req.Email); err == nil {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "email already registered", ""))
		return
	}

	u, err := userdomain.NewUser(req.Email, req.FirstName, req.LastName, req.Password, userdomain.RoleUser)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid account data", err.Error()))
		return
	}

	if err := c.userRepo.Create(ctx.Request.Context(), u); err != nil {
		c.logger.Error("failed to create user", "email", req.Email, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to create account", err.Error()))
		return
	}

	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("failed to generate token", "user_id", u.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to issue token", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(u),
	})
}

// Me returns the authenticated user
// @Summary Current user
// @Description Returns the identity behind the presented token
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/user [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := auth.CurrentUserID(ctx)

	u, err := c.userRepo.FindByID(ctx.Request.Context(), userID)
	if err != nil {
		if err == repository.ErrUserNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "user not found", ""))
			return
		}
		c.logger.Error("failed to find user", "user_id", userID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch user", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}
