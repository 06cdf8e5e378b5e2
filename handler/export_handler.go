package handler

import (
	"log"
	"net/http"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	Export *usecase.ExportService
}

func NewExportHandler(export *usecase.ExportService) *ExportHandler {
	return &ExportHandler{Export: export}
}

// ExportData returns the user's full logs and goals as one JSON bundle. The
// bundle is written unwrapped, with daily_logs, goals and exported_at at the
// top level, so the same document feeds straight back into ImportData.
func (h *ExportHandler) ExportData(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	bundle, err := h.Export.Export(c.Request.Context(), userID.(string))
	if err != nil {
		log.Printf("Error exporting data for %s: %v", userID, err)
		utils.InternalError(c, "Failed to export data")
		return
	}

	c.JSON(http.StatusOK, bundle)
}

// ImportData restores a previously exported bundle. Each record is upserted
// on its own; failures are reported per item and never abort the batch.
func (h *ExportHandler) ImportData(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var bundle model.ExportBundle
	if err := c.ShouldBindJSON(&bundle); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	result, err := h.Export.Import(c.Request.Context(), userID.(string), &bundle)
	if err != nil {
		log.Printf("Error importing data for %s: %v", userID, err)
		utils.InternalError(c, "Failed to import data")
		return
	}

	utils.Success(c, result)
}
