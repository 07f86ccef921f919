package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutRecord represents a single logged workout stored in MongoDB.
// Date carries the instant of the workout; records are bucketed into days by
// local day boundaries, never by exact instants. Calories are deliberately
// not tracked here, they live in CalorieEntry.
type WorkoutRecord struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID     string             `json:"owner_id" bson:"owner_id"`
	Date        time.Time          `json:"date" bson:"date"`
	MuscleGroup string             `json:"muscle_group" bson:"muscle_group"`
	Completed   bool               `json:"completed" bson:"completed"`
	Stats       map[string]float64 `json:"stats,omitempty" bson:"stats,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// CreateWorkoutRequest defines the request body for logging a workout
type CreateWorkoutRequest struct {
	Date        *time.Time         `json:"date,omitempty"`
	MuscleGroup string             `json:"muscle_group" validate:"required,max=50"`
	Completed   bool               `json:"completed"`
	Stats       map[string]float64 `json:"stats,omitempty"`
}
