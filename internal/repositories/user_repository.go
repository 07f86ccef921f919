package repositories

import (
	"context"
	"time"

	"github.com/gymbros-app/backend/internal/gymbros"
	"github.com/gymbros-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepository implements gymbros.UserStore over the users collection
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

// Create inserts a new user document keyed by the authenticated UID
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.FriendIDs == nil {
		user.FriendIDs = []string{}
	}
	user.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, user)
	return gymbros.Transient("insert user", err)
}

// GetByID retrieves a user by id
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, gymbros.ErrNotFound
		}
		return nil, gymbros.Transient("find user", err)
	}
	return &user, nil
}

// GetByIDs retrieves the users matching the given ids; missing ids are dropped
func (r *MongoUserRepository) GetByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, gymbros.Transient("find users", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, gymbros.Transient("decode users", err)
	}
	return users, nil
}

// FindByNameAndCode retrieves the user with the exact display name and friend
// code, or (nil, nil) when no user matches
func (r *MongoUserRepository) FindByNameAndCode(ctx context.Context, displayName, code string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"display_name": displayName, "friend_code": code}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, gymbros.Transient("find user by name and code", err)
	}
	return &user, nil
}

// CodeInUse reports whether any user currently holds the friend code
func (r *MongoUserRepository) CodeInUse(ctx context.Context, code string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"friend_code": code})
	if err != nil {
		return false, gymbros.Transient("count friend code", err)
	}
	return count > 0, nil
}

// Update saves profile fields on an existing user
func (r *MongoUserRepository) Update(ctx context.Context, user *models.User) error {
	update := bson.M{"$set": bson.M{
		"display_name": user.DisplayName,
		"photo_url":    user.PhotoURL,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if err != nil {
		return gymbros.Transient("update user", err)
	}
	if res.MatchedCount == 0 {
		return gymbros.ErrNotFound
	}
	return nil
}

// AddFriend adds friendID to the user's friend set. $addToSet makes re-adding
// an existing friend a no-op rather than an error.
func (r *MongoUserRepository) AddFriend(ctx context.Context, userID, friendID string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"friend_ids": friendID}},
	)
	if err != nil {
		return gymbros.Transient("add friend", err)
	}
	if res.MatchedCount == 0 {
		return gymbros.ErrNotFound
	}
	return nil
}

// RemoveFriend removes friendID from the user's friend set; absent ids are a no-op
func (r *MongoUserRepository) RemoveFriend(ctx context.Context, userID, friendID string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"friend_ids": friendID}},
	)
	if err != nil {
		return gymbros.Transient("remove friend", err)
	}
	if res.MatchedCount == 0 {
		return gymbros.ErrNotFound
	}
	return nil
}
