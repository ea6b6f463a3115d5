package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/appwrite"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/models"
)

type FilesHandler struct {
	files *appwrite.Files
}

func NewFilesHandler(files *appwrite.Files) *FilesHandler {
	return &FilesHandler{
		files: files,
	}
}

// GetFileURLs godoc
// @Summary     Get file URLs
// @Description Returns the preview, download and view URLs for a stored file
// @Tags        files
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       file_id path string true "File ID"
// @Param       bucket_id query string false "Bucket ID override"
// @Success     200 {object} models.FileURLsResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /files/{file_id}/urls [get]
func (h *FilesHandler) GetFileURLs(c *gin.Context) {
	fileID := c.Param("file_id")
	bucketID := c.Query("bucket_id")

	c.JSON(http.StatusOK, models.FileURLsResponse{
		FileID:   fileID,
		BucketID: h.files.Bucket(bucketID),
		Preview:  h.files.PreviewURL(fileID, bucketID),
		Download: h.files.DownloadURL(fileID, bucketID),
		View:     h.files.ViewURL(fileID, bucketID),
	})
}
