package auth

import (
	"errors"
	"net/http"

	"homeswap/internal/pkg/response"
	"homeswap/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts register/login.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	a := r.Group("/auth")
	{
		a.POST("/register", h.Register)
		a.POST("/login", h.Login)
	}
}

// RegisterRoutes mounts routes behind Auth middleware.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/auth/me", h.Me)
}

// Register godoc
// @Summary Register a member account
// @Tags Auth
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} map[string]interface{}
// @Failure 400,409,500 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid registration payload", details)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "REGISTER_ERROR", "registration failed")
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// Login godoc
// @Summary Log in and receive an access token
// @Tags Auth
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,500 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid credentials payload", details)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_ERROR", "login failed")
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{
		User: UserPublic{
			ID:             user.ID,
			Role:           string(user.Role),
			Name:           user.Name,
			Email:          user.Email,
			IdentityStatus: string(user.IdentityStatus),
		},
		Token: token,
	})
}

// Me godoc
// @Summary Current account profile
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	user, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "account no longer exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, user)
}
