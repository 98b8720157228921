package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reviewhub/models"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database
var ReviewCollection *mongo.Collection

// GetCollection returns a collection by name
func GetCollection(collectionName string) *mongo.Collection {
	return MongoDatabase.Collection(collectionName)
}

// extractDBName parses the database name from the URI, defaulting to "test"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "test"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "test"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
func ConnectMongoDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	MongoDatabase = client.Database(dbName)
	ReviewCollection = MongoDatabase.Collection("reviews")
	return nil
}

// SaveReview inserts a completed review and returns its generated id.
func SaveReview(ctx context.Context, r *models.Review) (primitive.ObjectID, error) {
	res, err := ReviewCollection.InsertOne(ctx, r)
	if err != nil {
		log.Printf("Error saving review: %v", err)
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// ListReviewsByEmail returns a user's past reviews, newest first.
func ListReviewsByEmail(ctx context.Context, email string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := ReviewCollection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetReviewByID fetches one review, scoped to its owner.
func GetReviewByID(ctx context.Context, id primitive.ObjectID, email string) (*models.Review, error) {
	var r models.Review
	err := ReviewCollection.FindOne(ctx, bson.M{"_id": id, "email": email}).Decode(&r)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("review not found")
		}
		return nil, err
	}
	return &r, nil
}
