package handler

import (
	"log"
	"net/http"

	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	Media *services.MediaStore
	Logs  *usecase.LogsService
}

func NewMediaHandler(media *services.MediaStore, logs *usecase.LogsService) *MediaHandler {
	return &MediaHandler{Media: media, Logs: logs}
}

// UploadMedia accepts multipart "photos" and "videos" files for a date. Each
// file is stored independently; successful uploads stay attached even when
// others in the same batch fail, and the response only reports how many were
// lost.
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}
	date := c.Param("date")

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequest(c, "Invalid multipart form")
		return
	}

	photos := form.File["photos"]
	videos := form.File["videos"]
	if len(photos) == 0 && len(videos) == 0 {
		utils.BadRequest(c, "No files provided")
		return
	}

	photoURLs, photosFailed := h.Media.UploadAll(userID.(string), date, "photo", photos)
	videoURLs, videosFailed := h.Media.UploadAll(userID.(string), date, "video", videos)
	failed := photosFailed + videosFailed

	if len(photoURLs)+len(videoURLs) > 0 {
		if err := h.Logs.AttachMedia(c.Request.Context(), userID.(string), date, photoURLs, videoURLs); err != nil {
			log.Printf("Error attaching media to log %s for %s: %v", date, userID, err)
			utils.BadRequest(c, err.Error())
			return
		}
	}

	utils.Success(c, gin.H{
		"photos": photoURLs,
		"videos": videoURLs,
		"failed": failed,
	})
}

// DownloadMedia streams a stored blob by id.
func (h *MediaHandler) DownloadMedia(c *gin.Context) {
	blob, err := h.Media.Open(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Media not found")
		return
	}
	defer blob.Close()

	contentType := blob.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, blob.Length, contentType, blob, map[string]string{
		"Content-Disposition": `inline; filename="` + blob.Name + `"`,
	})
}

// DeleteMedia removes a stored blob. The URL reference on the daily log is
// left to the next full-document save, matching the log's overwrite
// semantics.
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	if err := h.Media.Delete(c.Param("id")); err != nil {
		utils.NotFound(c, "Media not found")
		return
	}
	utils.Success(c, gin.H{"message": "Media deleted"})
}
