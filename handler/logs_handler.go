package handler

import (
	"errors"
	"log"

	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type LogsHandler struct {
	Logs *usecase.LogsService
}

func NewLogsHandler(logs *usecase.LogsService) *LogsHandler {
	return &LogsHandler{Logs: logs}
}

// GetLogs lists every daily log for the authenticated user, newest first.
func (h *LogsHandler) GetLogs(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	logs, err := h.Logs.GetUserLogs(c.Request.Context(), userID.(string))
	if err != nil {
		log.Printf("Error fetching logs for %s: %v", userID, err)
		utils.InternalError(c, "Failed to fetch daily logs")
		return
	}

	utils.Success(c, gin.H{"logs": logs})
}

// SearchLogs matches the query against notes and whatDidYouEat.
func (h *LogsHandler) SearchLogs(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	query := c.Query("q")
	logs, err := h.Logs.SearchLogs(c.Request.Context(), userID.(string), query)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"logs": logs})
}

func (h *LogsHandler) GetLog(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	logEntry, err := h.Logs.GetLog(c.Request.Context(), userID.(string), c.Param("date"))
	if err != nil {
		if errors.Is(err, repository.ErrLogNotFound) {
			utils.NotFound(c, "No log for that date")
			return
		}
		utils.BadRequest(c, "Invalid date")
		return
	}

	utils.Success(c, gin.H{"log": logEntry})
}

// PutLog saves the full document for a date. The write replaces whatever was
// stored before; there is no field-level merge.
func (h *LogsHandler) PutLog(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var logEntry model.DailyLog
	if err := c.ShouldBindJSON(&logEntry); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	logEntry.UserID = userID.(string)
	logEntry.Date = c.Param("date")

	if err := h.Logs.UpsertLog(c.Request.Context(), &logEntry); err != nil {
		log.Printf("Error saving log %s for %s: %v", logEntry.Date, userID, err)
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"log": logEntry})
}

func (h *LogsHandler) DeleteLog(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	if err := h.Logs.DeleteLog(c.Request.Context(), userID.(string), c.Param("date")); err != nil {
		if errors.Is(err, repository.ErrLogNotFound) {
			utils.NotFound(c, "No log for that date")
			return
		}
		log.Printf("Error deleting log %s for %s: %v", c.Param("date"), userID, err)
		utils.InternalError(c, "Failed to delete daily log")
		return
	}

	utils.Success(c, gin.H{"message": "Daily log deleted"})
}
