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

var ErrLogNotFound = errors.New("daily log not found")

type LogsRepo struct {
	MongoCollection *mongo.Collection
}

func GetLogsRepo(client *mongo.Client) *LogsRepo {
	return &LogsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("daily_logs"),
	}
}

// GetUserLogs retrieves every daily log for a user, newest date first.
func (r *LogsRepo) GetUserLogs(ctx context.Context, userID string) ([]model.DailyLog, error) {
	timer := utils.TrackDBOperation("find", "daily_logs")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "logs_find_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []model.DailyLog
	if err = cursor.All(ctx, &logs); err != nil {
		utils.TrackError("database", "logs_decode_failed")
		return nil, err
	}
	return logs, nil
}

// GetLog retrieves the log for one calendar date. Missing dates return
// ErrLogNotFound rather than a nil record.
func (r *LogsRepo) GetLog(ctx context.Context, userID, date string) (*model.DailyLog, error) {
	timer := utils.TrackDBOperation("find", "daily_logs")
	defer timer.ObserveDuration()

	var logEntry model.DailyLog
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"user_id": userID, "date": date}).Decode(&logEntry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLogNotFound
		}
		utils.TrackError("database", "log_lookup_failed")
		return nil, err
	}
	return &logEntry, nil
}

// UpsertLog writes the full document for a date. Overwrite semantics: the
// caller supplies the complete merged field set, there is no partial merge
// at this level.
func (r *LogsRepo) UpsertLog(ctx context.Context, logEntry *model.DailyLog) error {
	timer := utils.TrackDBOperation("upsert", "daily_logs")
	defer timer.ObserveDuration()

	logEntry.UpdatedAt = time.Now()
	if logEntry.CreatedAt.IsZero() {
		logEntry.CreatedAt = logEntry.UpdatedAt
	}
	if logEntry.ID == "" {
		// Dates are only unique per user; the document id carries both.
		logEntry.ID = logEntry.UserID + ":" + logEntry.Date
	}

	filter := bson.M{"user_id": logEntry.UserID, "date": logEntry.Date}
	opts := options.Replace().SetUpsert(true)

	_, err := r.MongoCollection.ReplaceOne(ctx, filter, logEntry, opts)
	if err != nil {
		utils.TrackError("database", "log_upsert_failed")
		return err
	}
	return nil
}

func (r *LogsRepo) DeleteLog(ctx context.Context, userID, date string) error {
	timer := utils.TrackDBOperation("delete", "daily_logs")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"user_id": userID, "date": date})
	if err != nil {
		utils.TrackError("database", "log_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrLogNotFound
	}
	return nil
}

// SearchLogs matches the free-text fields case-insensitively.
func (r *LogsRepo) SearchLogs(ctx context.Context, userID, query string) ([]model.DailyLog, error) {
	timer := utils.TrackDBOperation("find", "daily_logs")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id": userID,
		"$or": []bson.M{
			{"notes": bson.M{"$regex": query, "$options": "i"}},
			{"whatDidYouEat": bson.M{"$regex": query, "$options": "i"}},
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "logs_search_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []model.DailyLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// AttachMedia appends uploaded media URLs to a log's photo/video lists.
func (r *LogsRepo) AttachMedia(ctx context.Context, userID, date string, photos, videos []string) error {
	timer := utils.TrackDBOperation("update", "daily_logs")
	defer timer.ObserveDuration()

	push := bson.M{}
	if len(photos) > 0 {
		push["photos"] = bson.M{"$each": photos}
	}
	if len(videos) > 0 {
		push["videos"] = bson.M{"$each": videos}
	}
	if len(push) == 0 {
		return nil
	}

	filter := bson.M{"user_id": userID, "date": date}
	update := bson.M{
		"$push": push,
		"$set":  bson.M{"updated_at": time.Now()},
		"$setOnInsert": bson.M{
			"_id":        userID + ":" + date,
			"date":       date,
			"created_at": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.MongoCollection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		utils.TrackError("database", "media_attach_failed")
	}
	return err
}

func (r *LogsRepo) CountUserLogs(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "daily_logs")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
