package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Macros is an optional macronutrient breakdown attached to a calorie entry
type Macros struct {
	Protein float64 `json:"protein" bson:"protein" validate:"gte=0"`
	Carbs   float64 `json:"carbs" bson:"carbs" validate:"gte=0"`
	Fat     float64 `json:"fat" bson:"fat" validate:"gte=0"`
}

// CalorieEntry represents a logged calorie intake for a calendar day
type CalorieEntry struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID     string             `json:"owner_id" bson:"owner_id"`
	Day         time.Time          `json:"day" bson:"day"`
	Amount      int                `json:"amount" bson:"amount"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Macros      *Macros            `json:"macros,omitempty" bson:"macros,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// CreateCalorieEntryRequest defines the request body for logging calorie intake
type CreateCalorieEntryRequest struct {
	Day         *time.Time `json:"day,omitempty"`
	Amount      int        `json:"amount" validate:"required,gt=0"`
	Description string     `json:"description,omitempty" validate:"omitempty,max=200"`
	Macros      *Macros    `json:"macros,omitempty"`
}
