package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"main/model"
	"main/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type RememberedService struct {
	RememberedRepo *repository.RememberedRepo
}

func (svc *RememberedService) AddItem(ctx context.Context, item *model.RememberedItem) error {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return errors.New("remembered item title is required")
	}
	if item.ItemID == "" {
		item.ItemID = uuid.New().String()
	}

	if err := svc.RememberedRepo.CreateItem(ctx, item); err != nil {
		return fmt.Errorf("failed to create remembered item: %w", err)
	}
	return nil
}

func (svc *RememberedService) GetItems(ctx context.Context, userID string) ([]*model.RememberedItem, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	return svc.RememberedRepo.GetUserItems(ctx, userID)
}

func (svc *RememberedService) UpdateItem(ctx context.Context, itemID, userID, title, description string) error {
	fields := bson.M{}
	if title != "" {
		fields["title"] = strings.TrimSpace(title)
	}
	if description != "" {
		fields["description"] = description
	}
	if len(fields) == 0 {
		return errors.New("no fields to update")
	}
	return svc.RememberedRepo.UpdateItem(ctx, itemID, userID, fields)
}

func (svc *RememberedService) DeleteItem(ctx context.Context, itemID, userID string) error {
	if userID == "" {
		return errors.New("user ID is required")
	}
	return svc.RememberedRepo.DeleteItem(ctx, itemID, userID)
}
