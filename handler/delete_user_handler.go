package handler

import (
	"log"

	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// DeleteUserHandler removes the account and every session attached to it.
func DeleteUserHandler(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	if err := sessionRepo.DeleteUserSessions(userID.(string)); err != nil {
		log.Printf("Error deleting sessions for %s: %v", userID, err)
	}

	userService := &usecase.UserService{
		UsersRepo: repository.GetUserRepo(utils.MongoClient),
	}
	if err := userService.DeleteUser(userID.(string)); err != nil {
		if err.Error() == "user not found" {
			utils.NotFound(c, "User not found")
			return
		}
		log.Printf("Error deleting user %s: %v", userID, err)
		utils.InternalError(c, "Failed to delete user")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)

	utils.Success(c, gin.H{"message": "User deleted successfully"})
}
