package gymbros

import (
	"context"
	"slices"
	"time"

	"github.com/gymbros-app/backend/internal/models"
)

// FriendGraph maintains the symmetric friendship relation and the friend
// request lifecycle. If A lists B as a friend, B lists A.
type FriendGraph struct {
	users    UserStore
	requests FriendRequestStore
	txn      Transactor
	now      func() time.Time
}

// NewFriendGraph creates a FriendGraph over the given stores. The accept and
// unfriend paths mutate two user documents plus the request document; txn
// makes those writes commit or abort together.
func NewFriendGraph(users UserStore, requests FriendRequestStore, txn Transactor) *FriendGraph {
	return &FriendGraph{
		users:    users,
		requests: requests,
		txn:      txn,
		now:      time.Now,
	}
}

// SendFriendRequest creates a pending request from sender to recipient.
// Fails with ErrSelfRequest, ErrAlreadyFriends or ErrDuplicateRequest when
// the preconditions do not hold, and ErrNotFound when either user is missing.
func (g *FriendGraph) SendFriendRequest(ctx context.Context, senderID, recipientID string) (*models.FriendRequest, error) {
	if senderID == recipientID {
		return nil, ErrSelfRequest
	}

	sender, err := g.users.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if _, err := g.users.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	if slices.Contains(sender.FriendIDs, recipientID) {
		return nil, ErrAlreadyFriends
	}

	pending, err := g.requests.FindPending(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, ErrDuplicateRequest
	}

	req := &models.FriendRequest{
		SenderID:    senderID,
		RecipientID: recipientID,
		Status:      models.FriendRequestStatusPending,
		CreatedAt:   g.now(),
	}
	if err := g.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// GetRequest returns a friend request by id
func (g *FriendGraph) GetRequest(ctx context.Context, requestID string) (*models.FriendRequest, error) {
	return g.requests.GetByID(ctx, requestID)
}

// AcceptFriendRequest resolves a pending request and adds each party to the
// other's friend set. All three writes run in one transaction so a failure
// never leaves the graph asymmetric.
func (g *FriendGraph) AcceptFriendRequest(ctx context.Context, requestID string) error {
	req, err := g.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != models.FriendRequestStatusPending {
		return ErrAlreadyResolved
	}

	return g.txn.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := g.requests.Resolve(ctx, requestID, models.FriendRequestStatusAccepted, g.now()); err != nil {
			return err
		}
		if err := g.users.AddFriend(ctx, req.SenderID, req.RecipientID); err != nil {
			return err
		}
		return g.users.AddFriend(ctx, req.RecipientID, req.SenderID)
	})
}

// RejectFriendRequest resolves a pending request as rejected. No friend sets
// are touched; the sender may send a fresh request afterwards.
func (g *FriendGraph) RejectFriendRequest(ctx context.Context, requestID string) error {
	req, err := g.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != models.FriendRequestStatusPending {
		return ErrAlreadyResolved
	}
	return g.requests.Resolve(ctx, requestID, models.FriendRequestStatusRejected, g.now())
}

// RemoveFriend removes each user from the other's friend set. Removing a
// non-friend is a no-op.
func (g *FriendGraph) RemoveFriend(ctx context.Context, userID, friendID string) error {
	if _, err := g.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return g.txn.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := g.users.RemoveFriend(ctx, userID, friendID); err != nil {
			return err
		}
		return g.users.RemoveFriend(ctx, friendID, userID)
	})
}

// ListFriends resolves the user's friend set to full user records. Ids that
// no longer resolve to a user are silently dropped.
func (g *FriendGraph) ListFriends(ctx context.Context, userID string) ([]models.User, error) {
	user, err := g.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.FriendIDs) == 0 {
		return []models.User{}, nil
	}
	return g.users.GetByIDs(ctx, user.FriendIDs)
}

// ListPendingIncoming returns pending requests addressed to the user
func (g *FriendGraph) ListPendingIncoming(ctx context.Context, userID string) ([]models.FriendRequest, error) {
	return g.requests.ListPendingForRecipient(ctx, userID)
}

// ListPendingOutgoing returns pending requests sent by the user
func (g *FriendGraph) ListPendingOutgoing(ctx context.Context, userID string) ([]models.FriendRequest, error) {
	return g.requests.ListPendingForSender(ctx, userID)
}
