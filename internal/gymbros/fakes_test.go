package gymbros

import (
	"context"
	"sort"
	"time"

	"github.com/gymbros-app/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the Mongo repositories. Call counters let tests
// assert how many store round trips an operation issued.

type fakeUserStore struct {
	users         map[string]*models.User
	getByIDsCalls int
	codeCalls     int
	batches       [][]string
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: map[string]*models.User{}}
	for _, u := range users {
		if u.FriendIDs == nil {
			u.FriendIDs = []string{}
		}
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if user.FriendIDs == nil {
		user.FriendIDs = []string{}
	}
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByIDs(_ context.Context, ids []string) ([]models.User, error) {
	s.getByIDsCalls++
	s.batches = append(s.batches, ids)
	var out []models.User
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (s *fakeUserStore) FindByNameAndCode(_ context.Context, displayName, code string) (*models.User, error) {
	for _, user := range s.users {
		if user.DisplayName == displayName && user.FriendCode == code {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) CodeInUse(_ context.Context, code string) (bool, error) {
	s.codeCalls++
	for _, user := range s.users {
		if user.FriendCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return ErrNotFound
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) AddFriend(_ context.Context, userID, friendID string) error {
	user, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	for _, id := range user.FriendIDs {
		if id == friendID {
			return nil
		}
	}
	user.FriendIDs = append(user.FriendIDs, friendID)
	return nil
}

func (s *fakeUserStore) RemoveFriend(_ context.Context, userID, friendID string) error {
	user, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	out := user.FriendIDs[:0]
	for _, id := range user.FriendIDs {
		if id != friendID {
			out = append(out, id)
		}
	}
	user.FriendIDs = out
	return nil
}

type fakeRequestStore struct {
	requests map[string]*models.FriendRequest
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{requests: map[string]*models.FriendRequest{}}
}

func (s *fakeRequestStore) Create(_ context.Context, req *models.FriendRequest) error {
	req.ID = primitive.NewObjectID()
	copied := *req
	s.requests[req.ID.Hex()] = &copied
	return nil
}

func (s *fakeRequestStore) GetByID(_ context.Context, id string) (*models.FriendRequest, error) {
	req, ok := s.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *req
	return &copied, nil
}

func (s *fakeRequestStore) FindPending(_ context.Context, senderID, recipientID string) (*models.FriendRequest, error) {
	for _, req := range s.requests {
		if req.SenderID == senderID && req.RecipientID == recipientID && req.Status == models.FriendRequestStatusPending {
			copied := *req
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeRequestStore) ListPendingForRecipient(_ context.Context, recipientID string) ([]models.FriendRequest, error) {
	return s.listPending(func(req *models.FriendRequest) bool { return req.RecipientID == recipientID }), nil
}

func (s *fakeRequestStore) ListPendingForSender(_ context.Context, senderID string) ([]models.FriendRequest, error) {
	return s.listPending(func(req *models.FriendRequest) bool { return req.SenderID == senderID }), nil
}

func (s *fakeRequestStore) listPending(match func(*models.FriendRequest) bool) []models.FriendRequest {
	out := []models.FriendRequest{}
	for _, req := range s.requests {
		if req.Status == models.FriendRequestStatusPending && match(req) {
			out = append(out, *req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *fakeRequestStore) Resolve(_ context.Context, id string, status models.FriendRequestStatus, at time.Time) error {
	req, ok := s.requests[id]
	if !ok {
		return ErrNotFound
	}
	if req.Status != models.FriendRequestStatusPending {
		return ErrAlreadyResolved
	}
	req.Status = status
	req.ResolvedAt = &at
	return nil
}

type fakeWorkoutStore struct {
	records   []models.WorkoutRecord
	listCalls int
	batches   [][]string
}

func (s *fakeWorkoutStore) Create(_ context.Context, record *models.WorkoutRecord) error {
	s.records = append(s.records, *record)
	return nil
}

func (s *fakeWorkoutStore) ListForOwnersBetween(_ context.Context, ownerIDs []string, start, end time.Time) ([]models.WorkoutRecord, error) {
	s.listCalls++
	s.batches = append(s.batches, ownerIDs)
	owners := map[string]bool{}
	for _, id := range ownerIDs {
		owners[id] = true
	}
	var out []models.WorkoutRecord
	for _, record := range s.records {
		if owners[record.OwnerID] && !record.Date.Before(start) && record.Date.Before(end) {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

type fakeCalorieStore struct {
	entries   []models.CalorieEntry
	listCalls int
}

func (s *fakeCalorieStore) Create(_ context.Context, entry *models.CalorieEntry) error {
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *fakeCalorieStore) ListForOwnersBetween(_ context.Context, ownerIDs []string, start, end time.Time) ([]models.CalorieEntry, error) {
	s.listCalls++
	owners := map[string]bool{}
	for _, id := range ownerIDs {
		owners[id] = true
	}
	var out []models.CalorieEntry
	for _, entry := range s.entries {
		if owners[entry.OwnerID] && !entry.Day.Before(start) && entry.Day.Before(end) {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

// fakeTransactor runs the callback directly; tests only assert it was used.
type fakeTransactor struct {
	calls int
	fail  error
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if t.fail != nil {
		return t.fail
	}
	return fn(ctx)
}

type fakeWatcher struct {
	events chan struct{}
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{events: make(chan struct{}, 8)}
}

func (w *fakeWatcher) Watch(context.Context, []string) (<-chan struct{}, error) {
	return w.events, nil
}

func testUser(id, name, code string, friendIDs ...string) *models.User {
	if friendIDs == nil {
		friendIDs = []string{}
	}
	return &models.User{
		ID:          id,
		DisplayName: name,
		FriendCode:  code,
		FriendIDs:   friendIDs,
		CreatedAt:   time.Now(),
	}
}
