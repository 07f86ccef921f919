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

// MongoWorkoutRepository implements gymbros.WorkoutStore over the workouts collection
type MongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new MongoWorkoutRepository
func NewMongoWorkoutRepository(db *mongo.Database) *MongoWorkoutRepository {
	return &MongoWorkoutRepository{collection: db.Collection("workouts")}
}

// Create inserts a new workout record
func (r *MongoWorkoutRepository) Create(ctx context.Context, record *models.WorkoutRecord) error {
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()
	if record.Date.IsZero() {
		record.Date = record.CreatedAt
	}
	_, err := r.collection.InsertOne(ctx, record)
	return gymbros.Transient("insert workout", err)
}

// ListForOwnersBetween retrieves workouts for the given owners with
// start <= date < end, ordered by date ascending
func (r *MongoWorkoutRepository) ListForOwnersBetween(ctx context.Context, ownerIDs []string, start, end time.Time) ([]models.WorkoutRecord, error) {
	filter := bson.M{
		"owner_id": bson.M{"$in": ownerIDs},
		"date":     bson.M{"$gte": start, "$lt": end},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, gymbros.Transient("find workouts", err)
	}
	defer cursor.Close(ctx)

	records := []models.WorkoutRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, gymbros.Transient("decode workouts", err)
	}
	return records, nil
}
