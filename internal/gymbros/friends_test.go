package gymbros

import (
	"context"
	"testing"

	"github.com/gymbros-app/backend/internal/models"
	"github.com/stretchr/testify/require"
)

func newTestGraph(users ...*models.User) (*FriendGraph, *fakeUserStore, *fakeRequestStore, *fakeTransactor) {
	userStore := newFakeUserStore(users...)
	requestStore := newFakeRequestStore()
	txn := &fakeTransactor{}
	return NewFriendGraph(userStore, requestStore, txn), userStore, requestStore, txn
}

func TestSendFriendRequestToSelf(t *testing.T) {
	graph, _, _, _ := newTestGraph(testUser("alice", "Alice", "1111"))

	_, err := graph.SendFriendRequest(context.Background(), "alice", "alice")
	require.ErrorIs(t, err, ErrSelfRequest)
}

func TestSendFriendRequestUnknownUsers(t *testing.T) {
	graph, _, _, _ := newTestGraph(testUser("alice", "Alice", "1111"))

	_, err := graph.SendFriendRequest(context.Background(), "ghost", "alice")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = graph.SendFriendRequest(context.Background(), "alice", "ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSendFriendRequestDuplicatePending(t *testing.T) {
	graph, _, _, _ := newTestGraph(
		testUser("alice", "Alice", "1111"),
		testUser("bob", "Bob", "2222"),
	)

	_, err := graph.SendFriendRequest(context.Background(), "alice", "bob")
	require.NoError(t, err)

	_, err = graph.SendFriendRequest(context.Background(), "alice", "bob")
	require.ErrorIs(t, err, ErrDuplicateRequest)
}

func TestSendFriendRequestAlreadyFriends(t *testing.T) {
	graph, _, _, _ := newTestGraph(
		testUser("alice", "Alice", "1111", "bob"),
		testUser("bob", "Bob", "2222", "alice"),
	)

	_, err := graph.SendFriendRequest(context.Background(), "alice", "bob")
	require.ErrorIs(t, err, ErrAlreadyFriends)
}

func TestAcceptFriendRequestSymmetry(t *testing.T) {
	graph, userStore, _, txn := newTestGraph(
		testUser("alice", "Alice", "1111"),
		testUser("bob", "Bob", "2222"),
	)

	req, err := graph.SendFriendRequest(context.Background(), "alice", "bob")
	require.NoError(t, err)

	require.NoError(t, graph.AcceptFriendRequest(context.Background(), req.ID.Hex()))
	require.Equal(t, 1, txn.calls)

	alice, err := userStore.GetByID(context.Background(), "alice")
	require.NoError(t, err)
	bob, err := userStore.GetByID(context.Background(), "bob")
	require.NoError(t, err)
	require.Contains(t, alice.FriendIDs, "bob")
	require.Contains(t, bob.FriendIDs, "alice")

	stored, err := graph.GetRequest(context.Background(), req.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, models.FriendRequestStatusAccepted, stored.Status)
	require.NotNil(t, stored.ResolvedAt)
}

func TestAcceptFriendRequestIdempotentFriendSets(t *testing.T) {
	// Bob already lists Alice; accepting must not duplicate the entry.
	graph, userStore, _, _ := newTestGraph(
		testUser("alice", "Alice", "1111"),
		testUser("bob", "Bob", "2222", "alice"),
	)

	req, err := graph.SendFriendRequest(context.Background(), "alice", "bob")
	require.NoError(t, err)
	require.NoError(t, graph.AcceptFriendRequest(context.Background(), req.ID.Hex()))

	bob, err := userStore.GetByID(context.Background(), "bob")
	require.NoError(t, err)
	require.Equal(t, []string{"alice"}, bob.FriendIDs)
}

func TestAcceptFriendRequestNotFound(t *testing.T) {
	graph, _, _, _ := newTestGraph()

	err := graph.AcceptFriendRequest(context.Background(), "64b0c2f1a2b3c4d5e6f70812")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAcceptFriendRequestAlreadyResolved(t *testing.T) {
	graph, _, _, _ := newTestGraph(
		testUser("alice", "Alice", "1111"),
		testUser("bob", "Bob", "2222"),
	)

	req, err := graph.SendFriendRequest(context.Background(), "alice", "bob")
	require.NoError(t, err)
	require.NoError(t, graph.AcceptFriendRequest(context.Background(), req.ID.Hex()))

	err = graph.AcceptFriendRequest(context.Background(), req.ID.Hex())
	require.ErrorIs(t, err, ErrAlreadyResolved)

	err = graph.RejectFriendRequest(context.Background(), req.ID.Hex())
	require.ErrorIs(t, err, ErrAlreadyResolved)
}

func TestRejectThenResend(t *testing.T) {
	graph, userStore, _, _ := newTestGraph(
		testUser("alice", "Alice", "1111"),
		testUser("bob", "Bob", "2222"),
	)

	first, err := graph.SendFriendRequest(context.Background(), "alice", "bob")
	require.NoError(t, err)
	require.NoError(t, graph.RejectFriendRequest(context.Background(), first.ID.Hex()))

	// No graph mutation on reject.
	alice, err := userStore.GetByID(context.Background(), "alice")
	require.NoError(t, err)
	require.Empty(t, alice.FriendIDs)

	// A fresh request succeeds; the rejected one stays terminal and is not
	// listed as pending.
	second, err := graph.SendFriendRequest(context.Background(), "alice", "bob")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	pending, err := graph.ListPendingIncoming(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, second.ID, pending[0].ID)

	old, err := graph.GetRequest(context.Background(), first.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, models.FriendRequestStatusRejected, old.Status)
}

func TestPendingListings(t *testing.T) {
	graph, _, _, _ := newTestGraph(
		testUser("alice", "Alice", "1111"),
		testUser("bob", "Bob", "2222"),
		testUser("carol", "Carol", "3333"),
	)

	_, err := graph.SendFriendRequest(context.Background(), "alice", "bob")
	require.NoError(t, err)
	_, err = graph.SendFriendRequest(context.Background(), "carol", "bob")
	require.NoError(t, err)

	incoming, err := graph.ListPendingIncoming(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, incoming, 2)

	outgoing, err := graph.ListPendingOutgoing(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	require.Equal(t, "bob", outgoing[0].RecipientID)

	none, err := graph.ListPendingOutgoing(context.Background(), "bob")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestListFriendsDropsDanglingIDs(t *testing.T) {
	graph, _, _, _ := newTestGraph(
		testUser("alice", "Alice", "1111", "bob", "gone"),
		testUser("bob", "Bob", "2222", "alice"),
	)

	friends, err := graph.ListFriends(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, friends, 1)
	require.Equal(t, "bob", friends[0].ID)
}

func TestListFriendsEmptySet(t *testing.T) {
	graph, userStore, _, _ := newTestGraph(testUser("alice", "Alice", "1111"))

	friends, err := graph.ListFriends(context.Background(), "alice")
	require.NoError(t, err)
	require.Empty(t, friends)
	require.Zero(t, userStore.getByIDsCalls)
}

func TestRemoveFriendSymmetric(t *testing.T) {
	graph, userStore, _, txn := newTestGraph(
		testUser("alice", "Alice", "1111", "bob"),
		testUser("bob", "Bob", "2222", "alice"),
	)

	require.NoError(t, graph.RemoveFriend(context.Background(), "alice", "bob"))
	require.Equal(t, 1, txn.calls)

	alice, err := userStore.GetByID(context.Background(), "alice")
	require.NoError(t, err)
	bob, err := userStore.GetByID(context.Background(), "bob")
	require.NoError(t, err)
	require.Empty(t, alice.FriendIDs)
	require.Empty(t, bob.FriendIDs)
}

func TestAcceptSurfacesTransactionFailure(t *testing.T) {
	userStore := newFakeUserStore(
		testUser("alice", "Alice", "1111"),
		testUser("bob", "Bob", "2222"),
	)
	requestStore := newFakeRequestStore()
	txn := &fakeTransactor{fail: &TransientError{Op: "commit", Err: context.DeadlineExceeded}}
	graph := NewFriendGraph(userStore, requestStore, txn)

	req, err := graph.SendFriendRequest(context.Background(), "alice", "bob")
	require.NoError(t, err)

	err = graph.AcceptFriendRequest(context.Background(), req.ID.Hex())
	var te *TransientError
	require.ErrorAs(t, err, &te)
}
