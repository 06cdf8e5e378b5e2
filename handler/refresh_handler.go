package handler

import (
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// RefreshTokenHandler exchanges a valid refresh token for a new token pair.
// The old refresh token is blacklisted so it can only be spent once.
func RefreshTokenHandler(c *gin.Context) {
	refreshToken := c.GetHeader("Refresh-Token")
	if refreshToken == "" {
		utils.BadRequest(c, "Missing refresh token")
		return
	}

	if services.IsTokenBlacklisted(refreshToken) {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Token has been invalidated")
		return
	}

	userID, err := services.ParseRefreshToken(refreshToken)
	if err != nil {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	token, err := services.GenerateToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	newRefreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := services.BlacklistTokens("", refreshToken); err != nil {
		utils.InternalError(c, "Failed to rotate refresh token")
		return
	}

	utils.TrackAuthAttempt("success", "refresh")

	utils.Success(c, gin.H{
		"token":   token,
		"refresh": newRefreshToken,
	})
}
