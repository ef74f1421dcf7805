package handler

import (
	"net/http"

	"fitpro.com.br/fitnessproapi/pkg/apperror"
	"fitpro.com.br/fitnessproapi/pkg/response"
	"fitpro.com.br/fitnessproapi/pkg/storage"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	imageStorage storage.ImageStorage
	folder       string
}

func NewUploadHandler(imageStorage storage.ImageStorage, folder string) *UploadHandler {
	return &UploadHandler{imageStorage: imageStorage, folder: folder}
}

// Upload stores an image (typically an avatar) and returns its URL; the
// client then writes the URL into the user's avatar field. Without a
// configured storage backend the endpoint answers 503.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.imageStorage == nil {
		response.ResponseError(c, apperror.ErrIndisponivel)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "arquivo é obrigatório"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "falha ao ler o arquivo"})
		return
	}
	defer file.Close()

	url, err := h.imageStorage.UploadImage(c.Request.Context(), file, h.folder, fileHeader.Filename)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
