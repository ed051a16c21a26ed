package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rkenterprise/site-backend/internal/model"
	"github.com/rkenterprise/site-backend/internal/response"
	"github.com/rkenterprise/site-backend/internal/service"
	"github.com/rkenterprise/site-backend/internal/validator"
)

// ContactHandler handles the public contact form and the admin query inbox.
type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit godoc
// POST /api/contact/submit
// Public contact form intake.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.SubmitContactRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	query := &model.ContactQuery{
		Name:    req.Name,
		Email:   req.Email,
		Number:  req.Number,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.contactService.Submit(c.Request.Context(), query); err != nil {
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	response.Success(c, http.StatusCreated, "Query submitted successfully", gin.H{"id": query.ID})
}

// List godoc
// GET /api/queries
// Returns all queries, newest first.
func (h *ContactHandler) List(c *gin.Context) {
	queries, err := h.contactService.List(c.Request.Context())
	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"queries": queries})
}

// Delete godoc
// DELETE /api/queries/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	err = h.contactService.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case err != nil:
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
	default:
		response.Success(c, http.StatusOK, "Query deleted successfully", nil)
	}
}
