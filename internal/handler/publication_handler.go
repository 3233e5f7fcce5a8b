package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"anoa.com/redsocial/internal/dto"
	"anoa.com/redsocial/internal/service"
	"anoa.com/redsocial/pkg/response"
	"anoa.com/redsocial/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PublicationHandler struct {
	service service.PublicationService
	// uploadDir backs the image serving route; only meaningful with the
	// local storage driver.
	uploadDir string
}

func NewPublicationHandler(service service.PublicationService, uploadDir string) *PublicationHandler {
	return &PublicationHandler{
		service:   service,
		uploadDir: uploadDir,
	}
}

func (h *PublicationHandler) SavePublication(c *gin.Context) {
	var req dto.CreatePublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	callerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	publication, err := h.service.Create(c.Request.Context(), callerID, req.Text)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"publication": publication})
}

func (h *PublicationHandler) GetPublications(c *gin.Context) {
	callerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	feed, err := h.service.Feed(c.Request.Context(), callerID, parsePage(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

func (h *PublicationHandler) GetPublicationsUser(c *gin.Context) {
	authorID, err := uuid.Parse(c.Param("user"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	publications, err := h.service.ByAuthor(c.Request.Context(), authorID, parsePage(c))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, publications)
}

func (h *PublicationHandler) GetPublication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid publication id"})
		return
	}

	publication, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"publication": publication})
}

func (h *PublicationHandler) DeletePublication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid publication id"})
		return
	}

	callerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), callerID, id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "publication deleted successfully"})
}

func (h *PublicationHandler) UploadImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid publication id"})
		return
	}

	callerID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	defer file.Close()

	publication, err := h.service.AttachImage(c.Request.Context(), callerID, id, fileHeader.Filename, file)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"publication": publication})
}

// GetImageFile serves a stored publication image from disk.
func (h *PublicationHandler) GetImageFile(c *gin.Context) {
	imageFile := c.Param("imageFile")

	// Never serve outside the publications directory.
	if imageFile != filepath.Base(imageFile) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image name"})
		return
	}

	path := filepath.Join(h.uploadDir, "publications", imageFile)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image does not exist"})
		return
	}

	c.File(path)
}
