package gymbros

import (
	"context"
	"math/rand/v2"
	"regexp"
	"strconv"

	"github.com/gymbros-app/backend/internal/models"
)

var codePattern = regexp.MustCompile(`^[0-9]{4}$`)

// Discovery generates friend codes and resolves (name, code) pairs to users.
// A code is a 4-digit numeric string in [1000, 9999], unique among active
// users, shown next to the display name so friends can find each other.
type Discovery struct {
	users    UserStore
	attempts int
	intN     func(n int) int
}

// DiscoveryOption customises a Discovery
type DiscoveryOption func(*Discovery)

// WithCodeAttempts overrides the generation retry cap (default 100)
func WithCodeAttempts(n int) DiscoveryOption {
	return func(d *Discovery) {
		if n > 0 {
			d.attempts = n
		}
	}
}

// WithRandInt overrides the random source, used by tests for determinism
func WithRandInt(intN func(n int) int) DiscoveryOption {
	return func(d *Discovery) { d.intN = intN }
}

// NewDiscovery creates a Discovery over the user store
func NewDiscovery(users UserStore, opts ...DiscoveryOption) *Discovery {
	d := &Discovery{
		users:    users,
		attempts: 100,
		intN:     rand.IntN,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// GenerateUniqueCode draws random codes until one is not held by an existing
// user, up to the attempt cap. Codes are not reserved between generation and
// first use; the caller must persist the code promptly.
func (d *Discovery) GenerateUniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < d.attempts; i++ {
		code := strconv.Itoa(1000 + d.intN(9000))
		inUse, err := d.users.CodeInUse(ctx, code)
		if err != nil {
			return "", err
		}
		if !inUse {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}

// ResolveByNameAndCode looks up the user with the exact display name and
// friend code. Zero matches returns (nil, nil); the caller decides what to
// show. The Name#1234 search syntax is split by the client before this call.
func (d *Discovery) ResolveByNameAndCode(ctx context.Context, displayName, code string) (*models.User, error) {
	if !codePattern.MatchString(code) {
		return nil, ErrInvalidCodeFormat
	}
	return d.users.FindByNameAndCode(ctx, displayName, code)
}
