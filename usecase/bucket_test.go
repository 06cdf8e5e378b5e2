package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/model"
)

// fakeBucketStore records which store methods the service actually calls.
type fakeBucketStore struct {
	items       map[string]*model.BucketItem
	deleteCalls int
	setCalls    int
}

func newFakeBucketStore(items ...*model.BucketItem) *fakeBucketStore {
	s := &fakeBucketStore{items: make(map[string]*model.BucketItem)}
	for _, item := range items {
		s.items[item.ItemID] = item
	}
	return s
}

func (s *fakeBucketStore) CreateItem(ctx context.Context, item *model.BucketItem) error {
	s.items[item.ItemID] = item
	return nil
}

func (s *fakeBucketStore) GetUserItems(ctx context.Context, userID string) ([]*model.BucketItem, error) {
	var items []*model.BucketItem
	for _, item := range s.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *fakeBucketStore) GetItem(ctx context.Context, itemID, userID string) (*model.BucketItem, error) {
	item, ok := s.items[itemID]
	if !ok || item.UserID != userID {
		return nil, errors.New("bucket item not found")
	}
	return item, nil
}

func (s *fakeBucketStore) SetCompletedAt(ctx context.Context, itemID, userID string, completedAt *time.Time) error {
	s.setCalls++
	s.items[itemID].CompletedAt = completedAt
	return nil
}

func (s *fakeBucketStore) DeleteItem(ctx context.Context, itemID, userID string) error {
	s.deleteCalls++
	delete(s.items, itemID)
	return nil
}

func TestBucketDeleteGuard(t *testing.T) {
	now := time.Now()

	t.Run("Completed Item Cannot Be Deleted", func(t *testing.T) {
		store := newFakeBucketStore(&model.BucketItem{
			ItemID:      "item-1",
			UserID:      "user-1",
			Title:       "Skydive",
			CompletedAt: &now,
		})
		svc := &BucketService{Store: store}

		err := svc.DeleteItem(context.Background(), "item-1", "user-1")
		if !errors.Is(err, ErrCompletedItemLocked) {
			t.Fatalf("Expected ErrCompletedItemLocked, got %v", err)
		}
		if store.deleteCalls != 0 {
			t.Errorf("Store delete was called %d times on a completed item", store.deleteCalls)
		}
		if _, ok := store.items["item-1"]; !ok {
			t.Error("Completed item was removed from the store")
		}
	})

	t.Run("Incomplete Item Deletes Normally", func(t *testing.T) {
		store := newFakeBucketStore(&model.BucketItem{
			ItemID: "item-1",
			UserID: "user-1",
			Title:  "Skydive",
		})
		svc := &BucketService{Store: store}

		if err := svc.DeleteItem(context.Background(), "item-1", "user-1"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if store.deleteCalls != 1 {
			t.Errorf("Expected 1 delete call, got %d", store.deleteCalls)
		}
	})
}

func TestBucketToggleComplete(t *testing.T) {
	t.Run("Incomplete Becomes Completed", func(t *testing.T) {
		store := newFakeBucketStore(&model.BucketItem{
			ItemID: "item-1",
			UserID: "user-1",
			Title:  "Learn to sail",
		})
		svc := &BucketService{Store: store}

		item, err := svc.ToggleComplete(context.Background(), "item-1", "user-1")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if item.CompletedAt == nil {
			t.Error("Expected CompletedAt to be set")
		}
	})

	t.Run("Completed Becomes Incomplete", func(t *testing.T) {
		done := time.Now()
		store := newFakeBucketStore(&model.BucketItem{
			ItemID:      "item-1",
			UserID:      "user-1",
			Title:       "Learn to sail",
			CompletedAt: &done,
		})
		svc := &BucketService{Store: store}

		item, err := svc.ToggleComplete(context.Background(), "item-1", "user-1")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if item.CompletedAt != nil {
			t.Error("Expected CompletedAt to be cleared")
		}
	})
}

func TestBucketAddItem(t *testing.T) {
	store := newFakeBucketStore()
	svc := &BucketService{Store: store}

	t.Run("Empty Title Rejected", func(t *testing.T) {
		err := svc.AddItem(context.Background(), &model.BucketItem{ItemID: "x", UserID: "user-1", Title: "   "})
		if err == nil {
			t.Error("Expected error for blank title")
		}
	})

	t.Run("New Items Start Incomplete", func(t *testing.T) {
		done := time.Now()
		item := &model.BucketItem{
			ItemID:      "item-1",
			UserID:      "user-1",
			Title:       "  Visit Japan  ",
			CompletedAt: &done,
		}
		if err := svc.AddItem(context.Background(), item); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if item.Title != "Visit Japan" {
			t.Errorf("Expected trimmed title, got %q", item.Title)
		}
		if item.CompletedAt != nil {
			t.Error("Expected CompletedAt to be forced nil on create")
		}
	})

	// The id must be set before the insert so later toggles and deletes can
	// find the item again by the same string key.
	t.Run("Missing ID Assigned", func(t *testing.T) {
		item := &model.BucketItem{UserID: "user-1", Title: "Skydive"}
		if err := svc.AddItem(context.Background(), item); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if item.ItemID == "" {
			t.Fatal("Expected an item ID to be assigned on create")
		}
		if _, ok := store.items[item.ItemID]; !ok {
			t.Error("Expected item stored under its assigned ID")
		}
		if _, err := svc.ToggleComplete(context.Background(), item.ItemID, "user-1"); err != nil {
			t.Errorf("Expected created item to be reachable by its ID: %v", err)
		}
	})
}

func TestBucketGetItemsOrder(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	done := base.AddDate(0, 0, 10)

	store := newFakeBucketStore(
		&model.BucketItem{ItemID: "old-open", UserID: "user-1", Title: "a", CreatedAt: base},
		&model.BucketItem{ItemID: "new-open", UserID: "user-1", Title: "b", CreatedAt: base.AddDate(0, 0, 2)},
		&model.BucketItem{ItemID: "done", UserID: "user-1", Title: "c", CreatedAt: base.AddDate(0, 0, 5), CompletedAt: &done},
	)
	svc := &BucketService{Store: store}

	items, err := svc.GetItems(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	gotOrder := []string{items[0].ItemID, items[1].ItemID, items[2].ItemID}
	wantOrder := []string{"new-open", "old-open", "done"}
	for i := range wantOrder {
		if gotOrder[i] != wantOrder[i] {
			t.Fatalf("Expected order %v, got %v", wantOrder, gotOrder)
		}
	}
}
