package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logIndexes := []mongo.IndexModel{
		// One log per user per calendar date.
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().
				SetName("user_log_date").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "notes", Value: "text"},
				{Key: "whatDidYouEat", Value: "text"},
			},
			Options: options.Index().
				SetName("log_text_search").
				SetDefaultLanguage("english"),
		},
	}

	goalIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "deadline", Value: 1},
			},
			Options: options.Index().SetName("user_goal_deadline"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "type", Value: 1},
			},
			Options: options.Index().SetName("user_goal_type"),
		},
	}

	listIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("user_items_date"),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetName("session_id_index").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().SetName("user_active_sessions"),
		},
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("user_id_index").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("username_index").SetUnique(true),
		},
	}

	for coll, indexes := range map[string][]mongo.IndexModel{
		"daily_logs":  logIndexes,
		"goals":       goalIndexes,
		"bucket_list": listIndexes,
		"remembered":  listIndexes,
		"sessions":    sessionIndexes,
		"users":       userIndexes,
	} {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", coll, err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
