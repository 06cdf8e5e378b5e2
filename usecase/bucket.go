package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"main/model"

	"github.com/google/uuid"
)

// ErrCompletedItemLocked is the precondition violation for deleting a
// completed bucket item. The store is never called in that case.
var ErrCompletedItemLocked = errors.New("completed bucket items cannot be deleted")

// BucketStore is the persistence surface the service needs; satisfied by
// repository.BucketRepo.
type BucketStore interface {
	CreateItem(ctx context.Context, item *model.BucketItem) error
	GetUserItems(ctx context.Context, userID string) ([]*model.BucketItem, error)
	GetItem(ctx context.Context, itemID, userID string) (*model.BucketItem, error)
	SetCompletedAt(ctx context.Context, itemID, userID string, completedAt *time.Time) error
	DeleteItem(ctx context.Context, itemID, userID string) error
}

type BucketService struct {
	Store BucketStore
}

func (svc *BucketService) AddItem(ctx context.Context, item *model.BucketItem) error {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return errors.New("bucket item title is required")
	}
	if item.ItemID == "" {
		item.ItemID = uuid.New().String()
	}
	item.CompletedAt = nil

	if err := svc.Store.CreateItem(ctx, item); err != nil {
		return fmt.Errorf("failed to create bucket item: %w", err)
	}
	return nil
}

// GetItems lists a user's bucket items with completed ones pinned to the
// bottom, newest first within each group.
func (svc *BucketService) GetItems(ctx context.Context, userID string) ([]*model.BucketItem, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	items, err := svc.Store.GetUserItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Completed() != items[j].Completed() {
			return !items[i].Completed()
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// ToggleComplete flips completion: incomplete items get the current
// timestamp, completed ones go back to nil. This is the only mutation
// allowed on a completed item.
func (svc *BucketService) ToggleComplete(ctx context.Context, itemID, userID string) (*model.BucketItem, error) {
	item, err := svc.Store.GetItem(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}

	var completedAt *time.Time
	if !item.Completed() {
		now := time.Now()
		completedAt = &now
	}

	if err := svc.Store.SetCompletedAt(ctx, itemID, userID, completedAt); err != nil {
		return nil, fmt.Errorf("failed to toggle bucket item: %w", err)
	}

	item.CompletedAt = completedAt
	return item, nil
}

// DeleteItem removes an item unless it is completed; completed items are
// locked and must be toggled back first.
func (svc *BucketService) DeleteItem(ctx context.Context, itemID, userID string) error {
	item, err := svc.Store.GetItem(ctx, itemID, userID)
	if err != nil {
		return err
	}

	if item.Completed() {
		return ErrCompletedItemLocked
	}

	return svc.Store.DeleteItem(ctx, itemID, userID)
}
