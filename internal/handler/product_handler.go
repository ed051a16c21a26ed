package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rkenterprise/site-backend/internal/model"
	"github.com/rkenterprise/site-backend/internal/response"
	"github.com/rkenterprise/site-backend/internal/service"
	"github.com/rkenterprise/site-backend/internal/validator"
)

// ProductHandler handles public catalog and admin product endpoints.
// Create/Update/Delete coordinate the product row with its image file:
// the file is written first, the row mutated second, and the file removed
// again when the row mutation fails. The two steps are not atomic.
type ProductHandler struct {
	productService *service.ProductService
	mediaService   *service.MediaService
}

func NewProductHandler(productService *service.ProductService, mediaService *service.MediaService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		mediaService:   mediaService,
	}
}

// ListPublic godoc
// GET /api/products
// Returns active products only.
func (h *ProductHandler) ListPublic(c *gin.Context) {
	products, err := h.productService.ListPublic(c.Request.Context())
	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"products": products})
}

// ListAdmin godoc
// GET /api/admin/products
// Returns every product regardless of status.
func (h *ProductHandler) ListAdmin(c *gin.Context) {
	products, err := h.productService.ListAll(c.Request.Context())
	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}
	response.Success(c, http.StatusOK, "OK", gin.H{"products": products})
}

// Get godoc
// GET /api/products/:id
// Returns one product of any status.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	response.Success(c, http.StatusOK, "OK", gin.H{"product": product})
}

// Create godoc
// POST /api/admin/products
// Multipart form: image file is mandatory and validated before any write;
// the stored file is deleted again when the insert fails.
func (h *ProductHandler) Create(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	product, fields := parseProductForm(c)
	if fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	relPath, _, err := h.mediaService.SaveUpload(file, header)
	if err != nil {
		failUpload(c, err)
		return
	}
	product.Image = relPath

	if err := h.productService.Create(c.Request.Context(), product); err != nil {
		// Compensate: drop the file so a failed insert leaves no orphan.
		h.mediaService.Delete(relPath)
		if errors.Is(err, service.ErrInvalidStatus) {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidStatus)
			return
		}
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	response.Success(c, http.StatusCreated, "Product added successfully", gin.H{"product_id": product.ID})
}

// Update godoc
// PUT /api/admin/products/:id
// Accepts either a new image upload (the row's current file is deleted
// after a successful update) or an existing_image path kept as-is.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	product, fields := parseProductForm(c)
	if fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	product.ID = id

	current, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	newUpload := false
	file, header, err := c.Request.FormFile("image")
	if err == nil {
		defer file.Close()
		relPath, _, err := h.mediaService.SaveUpload(file, header)
		if err != nil {
			failUpload(c, err)
			return
		}
		product.Image = relPath
		newUpload = true
	} else {
		product.Image = strings.TrimSpace(c.PostForm("existing_image"))
		if product.Image == "" {
			response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
			return
		}
	}

	if err := h.productService.Update(c.Request.Context(), product); err != nil {
		if newUpload {
			// Compensate: the row was not updated, drop the new file.
			h.mediaService.Delete(product.Image)
		}
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrInvalidStatus):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidStatus)
		default:
			response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
		}
		return
	}

	// The row now points at the new file; retire the replaced one.
	if newUpload && current.Image != "" && current.Image != product.Image {
		h.mediaService.Delete(current.Image)
	}

	response.Success(c, http.StatusOK, "Product updated successfully", nil)
}

// ToggleStatus godoc
// PATCH /api/admin/products/:id/status
// Accepts only the literal statuses 0 and 1.
func (h *ProductHandler) ToggleStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.ToggleProductStatusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	err = h.productService.UpdateStatus(c.Request.Context(), id, *req.Status)
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidStatus)
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case err != nil:
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
	default:
		response.Success(c, http.StatusOK, "Product status updated successfully", nil)
	}
}

// Delete godoc
// DELETE /api/admin/products/:id
// Reads the row to discover its image, deletes the file (best effort),
// then deletes the row.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
		return
	}

	h.mediaService.Delete(product.Image)

	err = h.productService.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case err != nil:
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
	default:
		response.Success(c, http.StatusOK, "Product deleted successfully", nil)
	}
}

// parseProductForm reads the multipart fields shared by create and update.
// Returns a field error map in the same shape the validator produces.
func parseProductForm(c *gin.Context) (*model.Product, map[string]string) {
	fields := make(map[string]string)

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		fields["name"] = "name is a required field"
	}

	summary := strings.TrimSpace(c.PostForm("summary"))
	if summary == "" {
		fields["summary"] = "summary is a required field"
	}

	var description *string
	if d := strings.TrimSpace(c.PostForm("description")); d != "" {
		description = &d
	}

	specs := []model.Specification{}
	if raw := c.PostForm("specifications"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &specs); err != nil {
			fields["specifications"] = "specifications must be a JSON list of {label, value} pairs"
		}
	}

	status := model.ProductActive
	if raw := c.PostForm("status"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || (n != model.ProductInactive && n != model.ProductActive) {
			fields["status"] = "status must be either 0 (inactive) or 1 (active)"
		} else {
			status = n
		}
	}

	if len(fields) > 0 {
		return nil, fields
	}

	return &model.Product{
		Name:           name,
		Summary:        summary,
		Description:    description,
		Specifications: specs,
		Status:         status,
	}, nil
}
