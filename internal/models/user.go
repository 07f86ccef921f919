package models

import "time"

// User represents a GymBros profile stored in MongoDB. The document id is the
// authenticated UID supplied by Firebase, so no separate link field is needed.
type User struct {
	ID          string    `json:"id" bson:"_id"`
	DisplayName string    `json:"display_name" bson:"display_name"`
	FriendCode  string    `json:"friend_code" bson:"friend_code"`
	PhotoURL    string    `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	FriendIDs   []string  `json:"friend_ids" bson:"friend_ids"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// ToCompact returns the subset of a user's profile safe to embed in other payloads
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		FriendCode:  u.FriendCode,
		PhotoURL:    u.PhotoURL,
	}
}

// UserCompact is the public view of a user embedded in friend lists and lookups
type UserCompact struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	FriendCode  string `json:"friend_code"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// RegisterUserRequest defines the request body for creating a profile after Firebase sign-up
type RegisterUserRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=2,max=50"`
}

// UpdateUserRequest defines the request body for updating a profile
type UpdateUserRequest struct {
	DisplayName string `json:"display_name,omitempty" validate:"omitempty,min=2,max=50"`
}
