package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrGoalNotFound = errors.New("goal not found")

type GoalsRepo struct {
	MongoCollection *mongo.Collection
}

func GetGoalsRepo(client *mongo.Client) *GoalsRepo {
	return &GoalsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("goals"),
	}
}

func (r *GoalsRepo) CreateGoal(ctx context.Context, goal *model.Goal) error {
	timer := utils.TrackDBOperation("insert", "goals")
	defer timer.ObserveDuration()

	if goal.UserID == "" {
		return errors.New("user ID is required")
	}

	goal.CreatedAt = time.Now()
	goal.UpdatedAt = goal.CreatedAt

	_, err := r.MongoCollection.InsertOne(ctx, goal)
	if err != nil {
		utils.TrackError("database", "goal_creation_failed")
	}
	return err
}

// GetUserGoals retrieves all goals for a user sorted by deadline ascending.
func (r *GoalsRepo) GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	timer := utils.TrackDBOperation("find", "goals")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "deadline", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "goals_find_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var goals []*model.Goal
	if err = cursor.All(ctx, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// UpdateGoal applies a partial-merge update to a goal's mutable fields.
func (r *GoalsRepo) UpdateGoal(ctx context.Context, goalID, userID string, fields bson.M) error {
	timer := utils.TrackDBOperation("update", "goals")
	defer timer.ObserveDuration()

	fields["updated_at"] = time.Now()
	filter := bson.M{"_id": goalID, "user_id": userID}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		utils.TrackError("database", "goal_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// UpsertGoal writes the full goal document by id, used by import.
func (r *GoalsRepo) UpsertGoal(ctx context.Context, goal *model.Goal) error {
	timer := utils.TrackDBOperation("upsert", "goals")
	defer timer.ObserveDuration()

	goal.UpdatedAt = time.Now()
	filter := bson.M{"_id": goal.GoalID, "user_id": goal.UserID}
	opts := options.Replace().SetUpsert(true)

	_, err := r.MongoCollection.ReplaceOne(ctx, filter, goal, opts)
	if err != nil {
		utils.TrackError("database", "goal_upsert_failed")
	}
	return err
}

func (r *GoalsRepo) DeleteGoal(ctx context.Context, goalID, userID string) error {
	timer := utils.TrackDBOperation("delete", "goals")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": goalID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "goal_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrGoalNotFound
	}
	return nil
}
