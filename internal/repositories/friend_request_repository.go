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

// MongoFriendRequestRepository implements gymbros.FriendRequestStore over the
// friendRequests collection
type MongoFriendRequestRepository struct {
	collection *mongo.Collection
}

// NewMongoFriendRequestRepository creates a new MongoFriendRequestRepository
func NewMongoFriendRequestRepository(db *mongo.Database) *MongoFriendRequestRepository {
	return &MongoFriendRequestRepository{collection: db.Collection("friendRequests")}
}

// Create inserts a new friend request document
func (r *MongoFriendRequestRepository) Create(ctx context.Context, req *models.FriendRequest) error {
	req.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, req)
	return gymbros.Transient("insert friend request", err)
}

// GetByID retrieves a friend request by id
func (r *MongoFriendRequestRepository) GetByID(ctx context.Context, id string) (*models.FriendRequest, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, gymbros.ErrNotFound
	}

	var req models.FriendRequest
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, gymbros.ErrNotFound
		}
		return nil, gymbros.Transient("find friend request", err)
	}
	return &req, nil
}

// FindPending retrieves the pending request for the ordered (sender,
// recipient) pair, or (nil, nil) when none exists
func (r *MongoFriendRequestRepository) FindPending(ctx context.Context, senderID, recipientID string) (*models.FriendRequest, error) {
	filter := bson.M{
		"sender_id":    senderID,
		"recipient_id": recipientID,
		"status":       models.FriendRequestStatusPending,
	}
	var req models.FriendRequest
	err := r.collection.FindOne(ctx, filter).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, gymbros.Transient("find pending friend request", err)
	}
	return &req, nil
}

// ListPendingForRecipient retrieves pending requests addressed to the user,
// newest first
func (r *MongoFriendRequestRepository) ListPendingForRecipient(ctx context.Context, recipientID string) ([]models.FriendRequest, error) {
	return r.listPending(ctx, bson.M{"recipient_id": recipientID, "status": models.FriendRequestStatusPending})
}

// ListPendingForSender retrieves pending requests sent by the user, newest first
func (r *MongoFriendRequestRepository) ListPendingForSender(ctx context.Context, senderID string) ([]models.FriendRequest, error) {
	return r.listPending(ctx, bson.M{"sender_id": senderID, "status": models.FriendRequestStatusPending})
}

func (r *MongoFriendRequestRepository) listPending(ctx context.Context, filter bson.M) ([]models.FriendRequest, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, gymbros.Transient("find pending friend requests", err)
	}
	defer cursor.Close(ctx)

	requests := []models.FriendRequest{}
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, gymbros.Transient("decode friend requests", err)
	}
	return requests, nil
}

// Resolve flips a pending request to the given terminal status. The filter
// matches on status=pending so a concurrent resolution loses cleanly.
func (r *MongoFriendRequestRepository) Resolve(ctx context.Context, id string, status models.FriendRequestStatus, at time.Time) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return gymbros.ErrNotFound
	}

	filter := bson.M{"_id": objID, "status": models.FriendRequestStatusPending}
	update := bson.M{"$set": bson.M{"status": status, "resolved_at": at}}
	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return gymbros.Transient("resolve friend request", err)
	}
	if res.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": objID})
		if err != nil {
			return gymbros.Transient("resolve friend request", err)
		}
		if count == 0 {
			return gymbros.ErrNotFound
		}
		return gymbros.ErrAlreadyResolved
	}
	return nil
}
