package handler

import (
	"log"

	"main/model"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userService := &usecase.UserService{
		UsersRepo: repository.GetUserRepo(utils.MongoClient),
	}

	if err := userService.CreateUser(c.Request.Context(), &user); err != nil {
		if err.Error() == "username already exists" {
			utils.Conflict(c, "Username already exists")
			return
		}
		log.Printf("Error creating user %q: %v", user.Username, err)
		utils.BadRequest(c, "Invalid request")
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	utils.TrackAuthAttempt("success", "registration")

	utils.Created(c, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"refresh": refreshToken,
	})
}
