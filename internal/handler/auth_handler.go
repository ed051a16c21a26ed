package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rkenterprise/site-backend/internal/middleware"
	"github.com/rkenterprise/site-backend/internal/model"
	"github.com/rkenterprise/site-backend/internal/response"
	"github.com/rkenterprise/site-backend/internal/service"
	"github.com/rkenterprise/site-backend/internal/validator"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authService      *service.AuthService
	adminUserService *service.AdminUserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, adminUserService *service.AdminUserService) *AuthHandler {
	return &AuthHandler{
		authService:      authService,
		adminUserService: adminUserService,
	}
}

// Login godoc
// POST /api/admin/login
// Validates username + password and returns a signed bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.adminUserService.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		// Unknown username and bad password are indistinguishable.
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(user.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.Username)
	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// Me godoc
// GET /api/admin/me
// Returns the profile of the currently authenticated admin.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	user, err := h.adminUserService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, "OK", gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"created_at": user.CreatedAt,
		},
	})
}
