package repositories

import (
	"context"

	"github.com/gymbros-app/backend/internal/gymbros"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoActivityWatcher implements gymbros.Watcher with change streams on the
// workouts and calorieEntries collections. Any insert, update or delete for
// one of the owners produces a signal; the feed rebuilds from a fresh query,
// so the event itself carries no payload.
type MongoActivityWatcher struct {
	workouts *mongo.Collection
	calories *mongo.Collection
}

// NewMongoActivityWatcher creates a new MongoActivityWatcher
func NewMongoActivityWatcher(db *mongo.Database) *MongoActivityWatcher {
	return &MongoActivityWatcher{
		workouts: db.Collection("workouts"),
		calories: db.Collection("calorieEntries"),
	}
}

// Watch opens change streams scoped to the given owners and merges them into
// one signal channel. The streams close when ctx is cancelled.
func (w *MongoActivityWatcher) Watch(ctx context.Context, ownerIDs []string) (<-chan struct{}, error) {
	pipeline := mongo.Pipeline{bson.D{{Key: "$match", Value: bson.D{
		{Key: "fullDocument.owner_id", Value: bson.D{{Key: "$in", Value: ownerIDs}}},
	}}}}
	streamOptions := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	workoutStream, err := w.workouts.Watch(ctx, pipeline, streamOptions)
	if err != nil {
		return nil, gymbros.Transient("watch workouts", err)
	}
	calorieStream, err := w.calories.Watch(ctx, pipeline, streamOptions)
	if err != nil {
		workoutStream.Close(context.Background())
		return nil, gymbros.Transient("watch calorie entries", err)
	}

	out := make(chan struct{}, 1)
	drain := func(stream *mongo.ChangeStream) {
		defer stream.Close(context.Background())
		for stream.Next(ctx) {
			select {
			case out <- struct{}{}:
			default:
				// a rebuild is already queued
			}
		}
	}
	go drain(workoutStream)
	go drain(calorieStream)
	return out, nil
}
