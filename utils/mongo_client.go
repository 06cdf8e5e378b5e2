package utils

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// MongoClient is the shared connection for the process.
	MongoClient *mongo.Client

	// MongoDB is the application database, selected once from MONGO_DB.
	MongoDB *mongo.Database
)

// InitMongoClient connects, verifies the server is reachable and selects the
// application database. Calling it again is a no-op.
func InitMongoClient() {
	if MongoClient != nil {
		return
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("MONGO_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("MongoDB is unreachable: %v", err)
	}

	MongoClient = client
	MongoDB = client.Database(os.Getenv("MONGO_DB"))
}

func init() {
	if os.Getenv("GO_ENV") == "test" {
		return
	}
	godotenv.Load()
	InitMongoClient()
}
