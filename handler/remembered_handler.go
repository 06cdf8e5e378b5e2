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

type RememberedHandler struct {
	Remembered *usecase.RememberedService
}

func NewRememberedHandler(remembered *usecase.RememberedService) *RememberedHandler {
	return &RememberedHandler{Remembered: remembered}
}

func (h *RememberedHandler) GetItems(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	items, err := h.Remembered.GetItems(c.Request.Context(), userID.(string))
	if err != nil {
		log.Printf("Error fetching remembered items for %s: %v", userID, err)
		utils.InternalError(c, "Failed to fetch remembered items")
		return
	}

	utils.Success(c, gin.H{"items": items})
}

func (h *RememberedHandler) AddItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var item model.RememberedItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	item.UserID = userID.(string)

	if err := h.Remembered.AddItem(c.Request.Context(), &item); err != nil {
		log.Printf("Error creating remembered item for %s: %v", userID, err)
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"item": item})
}

type rememberedUpdateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *RememberedHandler) UpdateItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req rememberedUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	err := h.Remembered.UpdateItem(c.Request.Context(), c.Param("id"), userID.(string), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, repository.ErrRememberedItemNotFound) {
			utils.NotFound(c, "Remembered item not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Remembered item updated"})
}

func (h *RememberedHandler) DeleteItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	err := h.Remembered.DeleteItem(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		if errors.Is(err, repository.ErrRememberedItemNotFound) {
			utils.NotFound(c, "Remembered item not found")
			return
		}
		log.Printf("Error deleting remembered item %s for %s: %v", c.Param("id"), userID, err)
		utils.InternalError(c, "Failed to delete remembered item")
		return
	}

	utils.Success(c, gin.H{"message": "Remembered item deleted"})
}
