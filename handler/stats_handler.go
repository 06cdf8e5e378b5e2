package handler

import (
	"log"
	"time"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	Logs *usecase.LogsService
}

func NewStatsHandler(logs *usecase.LogsService) *StatsHandler {
	return &StatsHandler{Logs: logs}
}

// GetUserStats serves the aggregated snapshot derived from the user's daily
// logs. Cached per user; any log write invalidates it.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	stats, err := h.Logs.GetStats(c.Request.Context(), userID.(string), time.Now())
	if err != nil {
		log.Printf("Error computing stats for %s: %v", userID, err)
		utils.InternalError(c, "Failed to compute stats")
		return
	}

	utils.Success(c, gin.H{"stats": stats})
}
