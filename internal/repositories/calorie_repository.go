package repositories

import (
	"context"
	"time"

	"github.com/gymbros-app/backend/internal/gymbros"
	"github.com/gymbros-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCalorieRepository implements gymbros.CalorieStore over the
// calorieEntries collection
type MongoCalorieRepository struct {
	collection *mongo.Collection
}

// NewMongoCalorieRepository creates a new MongoCalorieRepository
func NewMongoCalorieRepository(db *mongo.Database) *MongoCalorieRepository {
	return &MongoCalorieRepository{collection: db.Collection("calorieEntries")}
}

// Create inserts a new calorie entry
func (r *MongoCalorieRepository) Create(ctx context.Context, entry *models.CalorieEntry) error {
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now()
	if entry.Day.IsZero() {
		entry.Day = entry.CreatedAt
	}
	_, err := r.collection.InsertOne(ctx, entry)
	return gymbros.Transient("insert calorie entry", err)
}

// ListForOwnersBetween retrieves calorie entries for the given owners with
// start <= day < end, ordered by day ascending
func (r *MongoCalorieRepository) ListForOwnersBetween(ctx context.Context, ownerIDs []string, start, end time.Time) ([]models.CalorieEntry, error) {
	filter := bson.M{
		"owner_id": bson.M{"$in": ownerIDs},
		"day":      bson.M{"$gte": start, "$lt": end},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "day", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, gymbros.Transient("find calorie entries", err)
	}
	defer cursor.Close(ctx)

	entries := []models.CalorieEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, gymbros.Transient("decode calorie entries", err)
	}
	return entries, nil
}
