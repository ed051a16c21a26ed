package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rkenterprise/site-backend/internal/response"
	"github.com/rkenterprise/site-backend/internal/service"
)

// MediaHandler handles the standalone image upload endpoint.
type MediaHandler struct {
	mediaService *service.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload godoc
// POST /api/admin/upload
// Stores an image and returns its relative path and generated filename.
func (h *MediaHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	relPath, filename, err := h.mediaService.SaveUpload(file, header)
	if err != nil {
		failUpload(c, err)
		return
	}

	response.Success(c, http.StatusOK, "File uploaded successfully", gin.H{
		"path":     relPath,
		"filename": filename,
	})
}

// failUpload maps media service errors onto upload error responses.
func failUpload(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnsupportedFileType):
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
	case errors.Is(err, service.ErrFileTooLarge):
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
	default:
		response.FailWithError(c, http.StatusInternalServerError, response.ErrInternal, err)
	}
}
