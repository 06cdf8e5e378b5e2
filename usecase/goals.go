package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"main/model"
	"main/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// nearingDeadlineWindow is how far ahead a goal's deadline may be to count
// as "nearing".
const nearingDeadlineWindow = 7

type GoalsService struct {
	GoalsRepo *repository.GoalsRepo
}

func (svc *GoalsService) CreateGoal(ctx context.Context, goal *model.Goal) error {
	goal.Title = strings.TrimSpace(goal.Title)
	if goal.Title == "" {
		return errors.New("goal title is required")
	}
	if goal.Deadline.IsZero() {
		return errors.New("goal deadline is required")
	}
	if goal.Type != model.GoalShortTerm && goal.Type != model.GoalLongTerm {
		return errors.New("goal type must be short or long")
	}
	if goal.Progress < 0 || goal.Progress > 100 {
		return errors.New("goal progress must be between 0 and 100")
	}

	if goal.GoalID == "" {
		goal.GoalID = uuid.New().String()
	}

	if err := svc.GoalsRepo.CreateGoal(ctx, goal); err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

func (svc *GoalsService) GetGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	return svc.GoalsRepo.GetUserGoals(ctx, userID)
}

// GetGoalsByType filters to short- or long-term goals, preserving the
// deadline-ascending order from the repository.
func (svc *GoalsService) GetGoalsByType(ctx context.Context, userID string, goalType model.GoalType) ([]*model.Goal, error) {
	goals, err := svc.GetGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return FilterGoalsByType(goals, goalType), nil
}

// GetGoalsNearingDeadline returns unfinished goals due within the next
// seven days.
func (svc *GoalsService) GetGoalsNearingDeadline(ctx context.Context, userID string, now time.Time) ([]*model.Goal, error) {
	goals, err := svc.GetGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return FilterGoalsNearingDeadline(goals, now), nil
}

type GoalUpdate struct {
	Title       *string         `json:"title,omitempty"`
	Description *string         `json:"description,omitempty"`
	Type        *model.GoalType `json:"type,omitempty"`
	Progress    *int            `json:"progress,omitempty"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
}

func (svc *GoalsService) UpdateGoal(ctx context.Context, goalID, userID string, update GoalUpdate) error {
	fields := bson.M{}
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return errors.New("goal title cannot be empty")
		}
		fields["title"] = title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Type != nil {
		if *update.Type != model.GoalShortTerm && *update.Type != model.GoalLongTerm {
			return errors.New("goal type must be short or long")
		}
		fields["type"] = *update.Type
	}
	if update.Progress != nil {
		if *update.Progress < 0 || *update.Progress > 100 {
			return errors.New("goal progress must be between 0 and 100")
		}
		fields["progress"] = *update.Progress
	}
	if update.Deadline != nil {
		fields["deadline"] = *update.Deadline
	}
	if len(fields) == 0 {
		return errors.New("no fields to update")
	}

	return svc.GoalsRepo.UpdateGoal(ctx, goalID, userID, fields)
}

func (svc *GoalsService) DeleteGoal(ctx context.Context, goalID, userID string) error {
	if userID == "" {
		return errors.New("user ID is required")
	}
	return svc.GoalsRepo.DeleteGoal(ctx, goalID, userID)
}

// FilterGoalsByType is the pure filter behind GetGoalsByType.
func FilterGoalsByType(goals []*model.Goal, goalType model.GoalType) []*model.Goal {
	filtered := make([]*model.Goal, 0)
	for _, g := range goals {
		if g.Type == goalType {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// FilterGoalsNearingDeadline keeps goals with 1-7 days left and progress
// under 100. Past-deadline goals are excluded; they are overdue, not
// nearing.
func FilterGoalsNearingDeadline(goals []*model.Goal, now time.Time) []*model.Goal {
	filtered := make([]*model.Goal, 0)
	for _, g := range goals {
		daysLeft := int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))
		if daysLeft > 0 && daysLeft <= nearingDeadlineWindow && g.Progress < 100 {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
