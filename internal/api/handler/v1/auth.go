package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge-api/internal/api/handler/v1/request"
	"github.com/mealbridge/mealbridge-api/internal/api/handler/v1/response"
	"github.com/mealbridge/mealbridge-api/internal/config"
	"github.com/mealbridge/mealbridge-api/internal/domain"
	"github.com/mealbridge/mealbridge-api/internal/pkg/jwthelper"
	"github.com/mealbridge/mealbridge-api/internal/service"
)

type AuthService interface {
	Register(ctx context.Context, email, password string, role domain.Role) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleRegister godoc
// @Summary      Register a new donor or NGO account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      201      {object}   response.RegisterResponse
// @Failure      400      {object}   map[string]string
// @Failure      409      {object}   map[string]string
// @Failure      500      {object}   map[string]string
// @Router       /register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": request.ErrMissingFields.Error()})

		return
	}

	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	user, err := h.svc.Register(ctx.Request.Context(), req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})

			return
		}

		err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
		zap.L().Error("registration failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL_ERROR"})

		return
	}

	ctx.JSON(http.StatusCreated, response.NewRegisterResponse(user))
}

// HandleLogin godoc
// @Summary      Login a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   map[string]string
// @Failure      401      {object}   map[string]string
// @Failure      500      {object}   map[string]string
// @Router       /login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		zap.L().Error("login failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL_ERROR"})

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		zap.L().Error("login failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL_ERROR"})

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  response.NewRegisterResponse(user),
	})
}
