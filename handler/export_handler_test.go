package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type stubExportLogs struct {
	logs []model.DailyLog
}

func (s *stubExportLogs) GetUserLogs(ctx context.Context, userID string) ([]model.DailyLog, error) {
	return s.logs, nil
}

type stubExportGoals struct {
	goals   []*model.Goal
	upserts []*model.Goal
}

func (s *stubExportGoals) GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	return s.goals, nil
}

func (s *stubExportGoals) UpsertGoal(ctx context.Context, goal *model.Goal) error {
	s.upserts = append(s.upserts, goal)
	return nil
}

type stubLogSaver struct {
	saved []*model.DailyLog
}

func (s *stubLogSaver) UpsertLog(ctx context.Context, logEntry *model.DailyLog) error {
	s.saved = append(s.saved, logEntry)
	return nil
}

func setupExportRouter(svc *usecase.ExportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "test-user")
		c.Next()
	})

	h := NewExportHandler(svc)
	router.GET("/export", h.ExportData)
	router.POST("/import", h.ImportData)
	return router
}

// An exported bundle must re-import as-is: the export body carries
// daily_logs, goals and exported_at at the top level, exactly the shape the
// import endpoint binds.
func TestExportImportRoundTrip(t *testing.T) {
	mood := 7
	exportRouter := setupExportRouter(&usecase.ExportService{
		LogsRepo: &stubExportLogs{logs: []model.DailyLog{
			{UserID: "test-user", Date: "2026-08-29", Mood: &mood, Notes: "long run"},
		}},
		GoalsRepo: &stubExportGoals{goals: []*model.Goal{
			{GoalID: "goal-1", UserID: "test-user", Type: model.GoalShortTerm, Title: "Read 12 books", Deadline: time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)},
		}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	exportRouter.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &shape); err != nil {
		t.Fatalf("Failed to parse export body: %v", err)
	}
	for _, key := range []string{"daily_logs", "goals", "exported_at"} {
		if _, ok := shape[key]; !ok {
			t.Errorf("Expected top-level %q key in export body", key)
		}
	}
	if _, ok := shape["data"]; ok {
		t.Error("Export body must not be wrapped in a data envelope")
	}

	saver := &stubLogSaver{}
	goalsStore := &stubExportGoals{}
	importRouter := setupExportRouter(&usecase.ExportService{
		GoalsRepo: goalsStore,
		LogsSvc:   saver,
	})

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/import", bytes.NewReader(w.Body.Bytes()))
	req2.Header.Set("Content-Type", "application/json")
	importRouter.ServeHTTP(w2, req2)

	if w2.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w2.Code, w2.Body.String())
	}

	var response utils.Response
	if err := json.Unmarshal(w2.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse import response: %v", err)
	}
	result, ok := response.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected import result object, got %T", response.Data)
	}
	if got := result["logs_imported"]; got != float64(1) {
		t.Errorf("Expected 1 log imported, got %v", got)
	}
	if got := result["goals_imported"]; got != float64(1) {
		t.Errorf("Expected 1 goal imported, got %v", got)
	}

	if len(saver.saved) != 1 || saver.saved[0].Date != "2026-08-29" {
		t.Fatalf("Expected the exported log back, got %+v", saver.saved)
	}
	if saver.saved[0].UserID != "test-user" {
		t.Errorf("Expected imported log re-keyed to the importing user, got %q", saver.saved[0].UserID)
	}
	if len(goalsStore.upserts) != 1 || goalsStore.upserts[0].Title != "Read 12 books" {
		t.Fatalf("Expected the exported goal back, got %+v", goalsStore.upserts)
	}
}
