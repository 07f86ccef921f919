package gymbros

import (
	"context"
	"errors"
	"log"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/gymbros-app/backend/internal/models"
)

// DefaultFeedBatchSize is the number of ids sent per membership query, the
// store's multi-value predicate limit.
const DefaultFeedBatchSize = 30

// FeedBuilder turns a friend list and the day's workout and calorie records
// into the ranked daily activity feed.
type FeedBuilder struct {
	users     UserStore
	workouts  WorkoutStore
	calories  CalorieStore
	watcher   Watcher
	batchSize int
	now       func() time.Time
	logger    *log.Logger
}

// FeedOption customises a FeedBuilder
type FeedOption func(*FeedBuilder)

// WithBatchSize overrides the per-query id limit (default 30)
func WithBatchSize(n int) FeedOption {
	return func(b *FeedBuilder) {
		if n > 0 {
			b.batchSize = n
		}
	}
}

// WithWatcher enables Subscribe by providing a change-notification source
func WithWatcher(w Watcher) FeedOption {
	return func(b *FeedBuilder) { b.watcher = w }
}

// WithClock overrides the time source, used by tests
func WithClock(now func() time.Time) FeedOption {
	return func(b *FeedBuilder) { b.now = now }
}

// WithFeedLogger overrides the logger used by the subscription loop
func WithFeedLogger(logger *log.Logger) FeedOption {
	return func(b *FeedBuilder) { b.logger = logger }
}

// NewFeedBuilder creates a FeedBuilder over the given stores
func NewFeedBuilder(users UserStore, workouts WorkoutStore, calories CalorieStore, opts ...FeedOption) *FeedBuilder {
	b := &FeedBuilder{
		users:     users,
		workouts:  workouts,
		calories:  calories,
		batchSize: DefaultFeedBatchSize,
		now:       time.Now,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// DayBounds returns the half-open local calendar day [start, end) containing t
func DayBounds(t time.Time) (start, end time.Time) {
	year, month, day := t.Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// batchResult holds one batch's raw query results, slotted by batch index so
// merging is independent of completion order.
type batchResult struct {
	users    []models.User
	workouts []models.WorkoutRecord
	calories []models.CalorieEntry
}

// BuildFeed produces one FeedEntry per resolvable friend for the local
// calendar day containing asOf. Friends with no activity still appear.
// Ordering: friends who worked out today first, most recent workout first;
// then inactive friends by display name ascending (byte order). The result
// is deterministic for identical inputs.
func (b *FeedBuilder) BuildFeed(ctx context.Context, friendIDs []string, asOf time.Time) ([]models.FeedEntry, error) {
	if len(friendIDs) == 0 {
		return []models.FeedEntry{}, nil
	}

	start, end := DayBounds(asOf)

	batches := splitBatches(friendIDs, b.batchSize)
	results := make([]batchResult, len(batches))
	for i, batch := range batches {
		users, err := b.users.GetByIDs(ctx, batch)
		if err != nil {
			return nil, err
		}
		workouts, err := b.workouts.ListForOwnersBetween(ctx, batch, start, end)
		if err != nil {
			return nil, err
		}
		calories, err := b.calories.ListForOwnersBetween(ctx, batch, start, end)
		if err != nil {
			return nil, err
		}
		results[i] = batchResult{users: users, workouts: workouts, calories: calories}
	}

	entries := make([]models.FeedEntry, 0, len(friendIDs))
	index := make(map[string]int, len(friendIDs))
	for _, res := range results {
		for _, u := range res.users {
			index[u.ID] = len(entries)
			entries = append(entries, models.FeedEntry{
				FriendID:     u.ID,
				DisplayName:  u.DisplayName,
				FriendCode:   u.FriendCode,
				PhotoURL:     u.PhotoURL,
				MuscleGroups: []string{},
			})
		}
	}

	for _, res := range results {
		for _, w := range res.workouts {
			i, ok := index[w.OwnerID]
			if !ok {
				continue
			}
			entry := &entries[i]
			// Presence of a same-day record counts as activity; the completed
			// flag is a separate signal and does not gate feed inclusion.
			entry.WorkedOutToday = true
			if group := strings.TrimSpace(w.MuscleGroup); group != "" && !slices.Contains(entry.MuscleGroups, group) {
				entry.MuscleGroups = append(entry.MuscleGroups, group)
			}
			at := w.Date
			if entry.LastWorkoutAt == nil || at.After(*entry.LastWorkoutAt) {
				entry.LastWorkoutAt = &at
			}
		}
		for _, c := range res.calories {
			if i, ok := index[c.OwnerID]; ok {
				entries[i].TotalCalories += c.Amount
			}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return lessFeedEntry(&entries[i], &entries[j])
	})
	return entries, nil
}

// lessFeedEntry ranks active friends by workout recency descending, with
// missing timestamps last, then inactive friends by display name ascending.
func lessFeedEntry(a, b *models.FeedEntry) bool {
	if a.WorkedOutToday != b.WorkedOutToday {
		return a.WorkedOutToday
	}
	if a.WorkedOutToday {
		switch {
		case a.LastWorkoutAt == nil:
			return false
		case b.LastWorkoutAt == nil:
			return true
		default:
			return a.LastWorkoutAt.After(*b.LastWorkoutAt)
		}
	}
	return a.DisplayName < b.DisplayName
}

func splitBatches(ids []string, size int) [][]string {
	var batches [][]string
	for len(ids) > size {
		batches = append(batches, ids[:size])
		ids = ids[size:]
	}
	return append(batches, ids)
}

// FeedSubscription delivers feed snapshots on C until cancelled. Only the
// latest snapshot is retained; a slow consumer sees the newest state, not a
// backlog.
type FeedSubscription struct {
	C      <-chan []models.FeedEntry
	cancel context.CancelFunc
}

// Cancel stops the subscription. C is closed once the loop drains.
func (s *FeedSubscription) Cancel() { s.cancel() }

// Subscribe emits an initial feed snapshot and a fresh one on every change to
// the friends' workout or calorie records. Each rebuild is independent; the
// last delivered snapshot wins.
func (b *FeedBuilder) Subscribe(ctx context.Context, friendIDs []string) (*FeedSubscription, error) {
	if b.watcher == nil {
		return nil, errors.New("feed builder has no watcher configured")
	}

	ctx, cancel := context.WithCancel(ctx)
	events, err := b.watcher.Watch(ctx, friendIDs)
	if err != nil {
		cancel()
		return nil, err
	}

	out := make(chan []models.FeedEntry, 1)
	go func() {
		defer close(out)
		emit := func() {
			feed, err := b.BuildFeed(ctx, friendIDs, b.now())
			if err != nil {
				if ctx.Err() == nil {
					b.logger.Printf("feed subscription: rebuild failed: %v", err)
				}
				return
			}
			select {
			case out <- feed:
			default:
				// replace the undelivered snapshot with the newer one
				select {
				case <-out:
				default:
				}
				out <- feed
			}
		}

		emit()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				emit()
			}
		}
	}()

	return &FeedSubscription{C: out, cancel: cancel}, nil
}
