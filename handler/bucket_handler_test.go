package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type stubBucketStore struct {
	item        *model.BucketItem
	deleteCalls int
}

func (s *stubBucketStore) CreateItem(ctx context.Context, item *model.BucketItem) error {
	return nil
}

func (s *stubBucketStore) GetUserItems(ctx context.Context, userID string) ([]*model.BucketItem, error) {
	return []*model.BucketItem{s.item}, nil
}

func (s *stubBucketStore) GetItem(ctx context.Context, itemID, userID string) (*model.BucketItem, error) {
	if s.item == nil || s.item.ItemID != itemID {
		return nil, errors.New("bucket item not found")
	}
	return s.item, nil
}

func (s *stubBucketStore) SetCompletedAt(ctx context.Context, itemID, userID string, completedAt *time.Time) error {
	s.item.CompletedAt = completedAt
	return nil
}

func (s *stubBucketStore) DeleteItem(ctx context.Context, itemID, userID string) error {
	s.deleteCalls++
	return nil
}

func setupBucketRouter(store usecase.BucketStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "test-user")
		c.Next()
	})

	h := NewBucketHandler(&usecase.BucketService{Store: store})
	router.DELETE("/bucket/:id", h.DeleteItem)
	router.POST("/bucket/:id/toggle", h.ToggleComplete)
	return router
}

func TestDeleteBucketItemHandler(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		item          *model.BucketItem
		expectedCode  int
		expectDeletes int
	}{
		{
			name: "Completed Item Returns Conflict",
			item: &model.BucketItem{
				ItemID:      "item-1",
				UserID:      "test-user",
				Title:       "Run a marathon",
				CompletedAt: &now,
			},
			expectedCode:  http.StatusConflict,
			expectDeletes: 0,
		},
		{
			name: "Incomplete Item Deletes",
			item: &model.BucketItem{
				ItemID: "item-1",
				UserID: "test-user",
				Title:  "Run a marathon",
			},
			expectedCode:  http.StatusOK,
			expectDeletes: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubBucketStore{item: tt.item}
			router := setupBucketRouter(store)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/bucket/item-1", nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Errorf("Expected status %d, got %d", tt.expectedCode, w.Code)
			}
			if store.deleteCalls != tt.expectDeletes {
				t.Errorf("Expected %d store deletes, got %d", tt.expectDeletes, store.deleteCalls)
			}

			var response utils.Response
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if tt.expectedCode == http.StatusConflict && response.Error == "" {
				t.Error("Expected error message in conflict response")
			}
		})
	}
}

func TestToggleBucketItemHandler(t *testing.T) {
	store := &stubBucketStore{item: &model.BucketItem{
		ItemID: "item-1",
		UserID: "test-user",
		Title:  "Run a marathon",
	}}
	router := setupBucketRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bucket/item-1/toggle", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if store.item.CompletedAt == nil {
		t.Error("Expected item to be marked completed")
	}

	// Toggling again flips it back.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/bucket/item-1/toggle", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if store.item.CompletedAt != nil {
		t.Error("Expected item to be marked incomplete again")
	}
}
