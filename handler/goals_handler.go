package handler

import (
	"errors"
	"log"
	"time"

	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type GoalsHandler struct {
	Goals *usecase.GoalsService
}

func NewGoalsHandler(goals *usecase.GoalsService) *GoalsHandler {
	return &GoalsHandler{Goals: goals}
}

// GetGoals lists the user's goals, optionally filtered with ?type=short|long.
func (h *GoalsHandler) GetGoals(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var (
		goals []*model.Goal
		err   error
	)
	switch goalType := c.Query("type"); goalType {
	case "":
		goals, err = h.Goals.GetGoals(c.Request.Context(), userID.(string))
	case string(model.GoalShortTerm), string(model.GoalLongTerm):
		goals, err = h.Goals.GetGoalsByType(c.Request.Context(), userID.(string), model.GoalType(goalType))
	default:
		utils.BadRequest(c, "Goal type must be short or long")
		return
	}
	if err != nil {
		log.Printf("Error fetching goals for %s: %v", userID, err)
		utils.InternalError(c, "Failed to fetch goals")
		return
	}

	utils.Success(c, gin.H{"goals": goals})
}

// GetGoalsNearingDeadline lists unfinished goals due within a week.
func (h *GoalsHandler) GetGoalsNearingDeadline(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	goals, err := h.Goals.GetGoalsNearingDeadline(c.Request.Context(), userID.(string), time.Now())
	if err != nil {
		log.Printf("Error fetching nearing-deadline goals for %s: %v", userID, err)
		utils.InternalError(c, "Failed to fetch goals")
		return
	}

	utils.Success(c, gin.H{"goals": goals})
}

func (h *GoalsHandler) CreateGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var goal model.Goal
	if err := c.ShouldBindJSON(&goal); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	goal.UserID = userID.(string)

	if err := h.Goals.CreateGoal(c.Request.Context(), &goal); err != nil {
		log.Printf("Error creating goal for %s: %v", userID, err)
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"goal": goal})
}

func (h *GoalsHandler) UpdateGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var update usecase.GoalUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	err := h.Goals.UpdateGoal(c.Request.Context(), c.Param("id"), userID.(string), update)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			utils.NotFound(c, "Goal not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Goal updated"})
}

func (h *GoalsHandler) DeleteGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	err := h.Goals.DeleteGoal(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			utils.NotFound(c, "Goal not found")
			return
		}
		log.Printf("Error deleting goal %s for %s: %v", c.Param("id"), userID, err)
		utils.InternalError(c, "Failed to delete goal")
		return
	}

	utils.Success(c, gin.H{"message": "Goal deleted"})
}
