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

var ErrBucketItemNotFound = errors.New("bucket item not found")

type BucketRepo struct {
	MongoCollection *mongo.Collection
}

func GetBucketRepo(client *mongo.Client) *BucketRepo {
	return &BucketRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("bucket_list"),
	}
}

func (r *BucketRepo) CreateItem(ctx context.Context, item *model.BucketItem) error {
	timer := utils.TrackDBOperation("insert", "bucket_list")
	defer timer.ObserveDuration()

	if item.UserID == "" {
		return errors.New("user ID is required")
	}

	item.CreatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, item)
	if err != nil {
		utils.TrackError("database", "bucket_creation_failed")
	}
	return err
}

func (r *BucketRepo) GetUserItems(ctx context.Context, userID string) ([]*model.BucketItem, error) {
	timer := utils.TrackDBOperation("find", "bucket_list")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "bucket_find_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*model.BucketItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BucketRepo) GetItem(ctx context.Context, itemID, userID string) (*model.BucketItem, error) {
	timer := utils.TrackDBOperation("find", "bucket_list")
	defer timer.ObserveDuration()

	var item model.BucketItem
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": itemID, "user_id": userID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBucketItemNotFound
		}
		utils.TrackError("database", "bucket_lookup_failed")
		return nil, err
	}
	return &item, nil
}

// SetCompletedAt flips the completion timestamp; nil clears it.
func (r *BucketRepo) SetCompletedAt(ctx context.Context, itemID, userID string, completedAt *time.Time) error {
	timer := utils.TrackDBOperation("update", "bucket_list")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": itemID, "user_id": userID}
	update := bson.M{"$set": bson.M{"completed_at": completedAt}}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "bucket_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrBucketItemNotFound
	}
	return nil
}

func (r *BucketRepo) DeleteItem(ctx context.Context, itemID, userID string) error {
	timer := utils.TrackDBOperation("delete", "bucket_list")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": itemID, "user_id": userID})
	if err != nil {
		utils.TrackError("database", "bucket_delete_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrBucketItemNotFound
	}
	return nil
}
