package handler

import (
	"log"

	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetUserProfileHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	userService := &usecase.UserService{
		UsersRepo: repository.GetUserRepo(utils.MongoClient),
	}

	user, err := userService.FindUser(userID.(string))
	if err != nil {
		log.Printf("Error fetching user %s: %v", userID, err)
		utils.InternalError(c, "Could not fetch user details")
		return
	}
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	loggedDays, err := repository.GetLogsRepo(utils.MongoClient).CountUserLogs(c.Request.Context(), user.UserID)
	if err != nil {
		log.Printf("Error counting logs for %s: %v", userID, err)
		utils.InternalError(c, "Could not fetch user details")
		return
	}

	utils.Success(c, gin.H{
		"user": gin.H{
			"id":          user.UserID,
			"username":    user.Username,
			"email":       user.Email,
			"created_at":  user.CreatedAt,
			"logged_days": loggedDays,
		},
	})
}
