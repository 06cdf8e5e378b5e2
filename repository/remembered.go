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

var ErrRememberedItemNotFound = errors.New("remembered item not found")

type RememberedRepo struct {
	MongoCollection *mongo.Collection
}

func GetRememberedRepo(client *mongo.Client) *RememberedRepo {
	return &RememberedRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("remembered"),
	}
}

func (r *RememberedRepo) CreateItem(ctx context.Context, item *model.RememberedItem) error {
	timer := utils.TrackDBOperation("insert", "remembered")
	defer timer.ObserveDuration()

	if item.UserID == "" {
		return errors.New("user ID is required")
	}

	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt

	_, err := r.MongoCollection.InsertOne(ctx, item)
	if err != nil {
		utils.TrackError("database", "remembered_creation_failed")
	}
	return err
}

func (r *RememberedRepo) GetUserItems(ctx context.Context, userID string) ([]*model.RememberedItem, error) {
	timer := utils.TrackDBOperation("find", "remembered")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "remembered_find_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*model.RememberedItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RememberedRepo) UpdateItem(ctx context.Context, itemID, userID string, fields bson.M) error {
	timer := utils.TrackDBOperation("update", "remembered")
	defer timer.ObserveDuration()

	fields["updated_at"] = time.Now()
	filter := bson.M{"_id": itemID, "user_id": userID}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		utils.TrackError("database", "remembered_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRememberedItemNotFound
	}
	return nil
}

func (r *RememberedRepo) DeleteItem(ctx context.Context, itemID, userID string) error {
	timer := utils.TrackDBOperation("delete", "remembered")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": itemID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "remembered_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRememberedItemNotFound
	}
	return nil
}
