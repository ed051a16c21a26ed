package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rkenterprise/site-backend/internal/middleware"
	"github.com/rkenterprise/site-backend/internal/model"
	"github.com/rkenterprise/site-backend/internal/response"
	"github.com/rkenterprise/site-backend/internal/service"
	"github.com/rkenterprise/site-backend/internal/validator"
)

// AdminUserHandler handles admin account management endpoints.
type AdminUserHandler struct {
	service *service.AdminUserService
}

func NewAdminUserHandler(service *service.AdminUserService) *AdminUserHandler {
	return &AdminUserHandler{service: service}
}

// List godoc
// GET /api/admin/users
// Returns all admin accounts ascending by id.
func (h *AdminUserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	if users == nil {
		users = []model.AdminUser{}
	}

	response.Success(c, http.StatusOK, "OK", gin.H{"users": users})
}

// Create godoc
// POST /api/admin/users
func (h *AdminUserHandler) Create(c *gin.Context) {
	var req model.CreateAdminUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.service.Create(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.Fail(c, http.StatusBadRequest, response.ErrConflict)
			return
		}
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	response.Success(c, http.StatusCreated, "User added successfully", gin.H{"user_id": user.ID})
}

// Update godoc
// PUT /api/admin/users/:id
// Password is rehashed only when provided.
func (h *AdminUserHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAdminUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	err = h.service.Update(c.Request.Context(), id, req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		response.Fail(c, http.StatusBadRequest, response.ErrConflict)
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case err != nil:
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
	default:
		response.Success(c, http.StatusOK, "User updated successfully", nil)
	}
}

// Delete godoc
// DELETE /api/admin/users/:id
// Deleting the account that authenticates this request is forbidden.
func (h *AdminUserHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	claims := middleware.GetClaims(c)
	if claims != nil && claims.UserID == id {
		response.Fail(c, http.StatusBadRequest, response.ErrActionForbidden)
		return
	}

	err = h.service.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case err != nil:
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
	default:
		response.Success(c, http.StatusOK, "User deleted successfully", nil)
	}
}
