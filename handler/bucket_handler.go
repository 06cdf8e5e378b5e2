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

type BucketHandler struct {
	Bucket *usecase.BucketService
}

func NewBucketHandler(bucket *usecase.BucketService) *BucketHandler {
	return &BucketHandler{Bucket: bucket}
}

// GetItems lists bucket items with completed ones sorted to the bottom.
func (h *BucketHandler) GetItems(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	items, err := h.Bucket.GetItems(c.Request.Context(), userID.(string))
	if err != nil {
		log.Printf("Error fetching bucket items for %s: %v", userID, err)
		utils.InternalError(c, "Failed to fetch bucket list")
		return
	}

	utils.Success(c, gin.H{"items": items})
}

func (h *BucketHandler) AddItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var item model.BucketItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}
	item.UserID = userID.(string)

	if err := h.Bucket.AddItem(c.Request.Context(), &item); err != nil {
		log.Printf("Error creating bucket item for %s: %v", userID, err)
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"item": item})
}

// ToggleComplete flips an item between done and not done.
func (h *BucketHandler) ToggleComplete(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	item, err := h.Bucket.ToggleComplete(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		if errors.Is(err, repository.ErrBucketItemNotFound) {
			utils.NotFound(c, "Bucket item not found")
			return
		}
		log.Printf("Error toggling bucket item %s for %s: %v", c.Param("id"), userID, err)
		utils.InternalError(c, "Failed to update bucket item")
		return
	}

	utils.Success(c, gin.H{"item": item})
}

// DeleteItem removes an item. Completed items are refused with a 409; the
// client has to toggle them back to incomplete first.
func (h *BucketHandler) DeleteItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	err := h.Bucket.DeleteItem(c.Request.Context(), c.Param("id"), userID.(string))
	if err != nil {
		if errors.Is(err, usecase.ErrCompletedItemLocked) {
			utils.Conflict(c, "Completed bucket items cannot be deleted")
			return
		}
		if errors.Is(err, repository.ErrBucketItemNotFound) {
			utils.NotFound(c, "Bucket item not found")
			return
		}
		log.Printf("Error deleting bucket item %s for %s: %v", c.Param("id"), userID, err)
		utils.InternalError(c, "Failed to delete bucket item")
		return
	}

	utils.Success(c, gin.H{"message": "Bucket item deleted"})
}
