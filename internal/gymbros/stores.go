package gymbros

import (
	"context"
	"time"

	"github.com/gymbros-app/backend/internal/models"
)

// UserStore defines the user collection operations the core depends on
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	// GetByID returns ErrNotFound when no user document exists for id.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByIDs returns the users that exist; missing ids are silently dropped.
	GetByIDs(ctx context.Context, ids []string) ([]models.User, error)
	// FindByNameAndCode returns (nil, nil) when no user matches.
	FindByNameAndCode(ctx context.Context, displayName, code string) (*models.User, error)
	CodeInUse(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	// AddFriend adds friendID to the user's friend set; a no-op if already present.
	AddFriend(ctx context.Context, userID, friendID string) error
	// RemoveFriend removes friendID from the user's friend set; a no-op if absent.
	RemoveFriend(ctx context.Context, userID, friendID string) error
}

// FriendRequestStore defines the friendRequests collection operations
type FriendRequestStore interface {
	Create(ctx context.Context, req *models.FriendRequest) error
	// GetByID returns ErrNotFound when no request exists for id.
	GetByID(ctx context.Context, id string) (*models.FriendRequest, error)
	// FindPending returns (nil, nil) when no pending request exists for the ordered pair.
	FindPending(ctx context.Context, senderID, recipientID string) (*models.FriendRequest, error)
	ListPendingForRecipient(ctx context.Context, recipientID string) ([]models.FriendRequest, error)
	ListPendingForSender(ctx context.Context, senderID string) ([]models.FriendRequest, error)
	// Resolve flips a request from pending to status. Returns ErrAlreadyResolved
	// when the request is no longer pending, ErrNotFound when it never existed.
	Resolve(ctx context.Context, id string, status models.FriendRequestStatus, at time.Time) error
}

// WorkoutStore defines the workouts collection operations
type WorkoutStore interface {
	Create(ctx context.Context, record *models.WorkoutRecord) error
	// ListForOwnersBetween returns records with start <= date < end for the
	// given owners, ordered by date ascending.
	ListForOwnersBetween(ctx context.Context, ownerIDs []string, start, end time.Time) ([]models.WorkoutRecord, error)
}

// CalorieStore defines the calorieEntries collection operations
type CalorieStore interface {
	Create(ctx context.Context, entry *models.CalorieEntry) error
	// ListForOwnersBetween returns entries with start <= day < end for the
	// given owners, ordered by day ascending.
	ListForOwnersBetween(ctx context.Context, ownerIDs []string, start, end time.Time) ([]models.CalorieEntry, error)
}

// Transactor runs fn inside a single store transaction. Writes issued through
// the fn context commit or abort together.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Watcher yields a signal whenever an underlying workout or calorie record
// belonging to one of the owners changes. The channel stops delivering once
// ctx is cancelled.
type Watcher interface {
	Watch(ctx context.Context, ownerIDs []string) (<-chan struct{}, error)
}
