package models

import "time"

// FeedEntry is one friend's row in the daily activity feed. It is derived
// from the day's workout and calorie records and never persisted.
type FeedEntry struct {
	FriendID       string     `json:"friend_id"`
	DisplayName    string     `json:"display_name"`
	FriendCode     string     `json:"friend_code"`
	PhotoURL       string     `json:"photo_url,omitempty"`
	WorkedOutToday bool       `json:"worked_out_today"`
	TotalCalories  int        `json:"total_calories"`
	MuscleGroups   []string   `json:"muscle_groups"`
	LastWorkoutAt  *time.Time `json:"last_workout_at,omitempty"`
}
