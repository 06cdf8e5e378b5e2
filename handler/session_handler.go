package handler

import (
	"log"

	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetActiveSessions(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	sessions, err := sessionRepo.GetUserActiveSessions(userID.(string))
	if err != nil {
		log.Printf("Error fetching sessions for %s: %v", userID, err)
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	utils.Success(c, gin.H{"sessions": sessions})
}

// LogoutSession ends a single session by id. Users can only end their own.
func LogoutSession(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	sessionID := c.Param("id")
	session, err := sessionRepo.GetSession(sessionID)
	if err != nil || session == nil {
		utils.NotFound(c, "Session not found")
		return
	}
	if session.UserID != userID.(string) {
		utils.Forbidden(c, "Session belongs to another user")
		return
	}

	if err := sessionRepo.EndSession(sessionID); err != nil {
		log.Printf("Error ending session %s: %v", sessionID, err)
		utils.InternalError(c, "Failed to end session")
		return
	}

	utils.Success(c, gin.H{"message": "Session ended"})
}

func LogoutAllSessions(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	if err := sessionRepo.EndAllUserSessions(userID.(string)); err != nil {
		log.Printf("Error ending sessions for %s: %v", userID, err)
		utils.InternalError(c, "Failed to end all sessions")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)

	utils.Success(c, gin.H{"message": "Successfully logged out of all sessions"})
}
