package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FriendRequestStatus is the lifecycle state of a friend request
type FriendRequestStatus string

const (
	FriendRequestStatusPending  FriendRequestStatus = "pending"
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	FriendRequestStatusRejected FriendRequestStatus = "rejected"
)

// FriendRequest represents a friend request between two users. Requests are
// append-mostly: once resolved they are never mutated again, a retry after a
// rejection creates a fresh document.
type FriendRequest struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	SenderID    string              `json:"sender_id" bson:"sender_id"`
	RecipientID string              `json:"recipient_id" bson:"recipient_id"`
	Status      FriendRequestStatus `json:"status" bson:"status"`
	CreatedAt   time.Time           `json:"created_at" bson:"created_at"`
	ResolvedAt  *time.Time          `json:"resolved_at,omitempty" bson:"resolved_at,omitempty"`
}

// SendFriendRequestBody defines the request body for sending a friend request
type SendFriendRequestBody struct {
	RecipientID string `json:"recipient_id" validate:"required"`
}

// UpdateFriendRequestBody defines the request body for accepting/rejecting a friend request
type UpdateFriendRequestBody struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}
