package handler

import (
	"context"
	"time"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// HealthCheckHandler reports process and dependency health. Degraded
// dependencies are listed but the endpoint itself always answers 200 as long
// as the process is serving.
func HealthCheckHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	mongoStatus := "up"
	if err := utils.MongoClient.Ping(ctx, nil); err != nil {
		mongoStatus = "down"
	}

	redisStatus := "down"
	if services.GlobalSessionCache != nil && services.GlobalSessionCache.IsConnected() {
		redisStatus = "up"
	}

	utils.Success(c, gin.H{
		"status":    "ok",
		"cpu_usage": utils.GetCPUUsage(),
		"mongo":     mongoStatus,
		"redis":     redisStatus,
	})
}
