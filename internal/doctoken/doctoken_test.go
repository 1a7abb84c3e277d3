package doctoken

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(ttl time.Duration) (*Gate, *MemoryStore, *time.Time) {
	store := NewMemoryStore()
	gate := NewGate(store, ttl)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	gate.now = func() time.Time { return now }
	return gate, store, &now
}

func TestIssueAndValidate(t *testing.T) {
	gate, _, _ := newTestGate(5 * time.Second)
	ctx := context.Background()

	token, err := gate.Issue(ctx, "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	username, err := gate.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestValidateIsReplayableUntilExpiry(t *testing.T) {
	gate, _, now := newTestGate(5 * time.Second)
	ctx := context.Background()

	token, err := gate.Issue(ctx, "admin")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := gate.Validate(ctx, token)
		require.NoError(t, err)
	}

	*now = now.Add(5 * time.Second)
	_, err = gate.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateUnknownToken(t *testing.T) {
	gate, _, _ := newTestGate(5 * time.Second)

	_, err := gate.Validate(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = gate.Validate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueSweepsExpiredTokens(t *testing.T) {
	gate, store, now := newTestGate(5 * time.Second)
	ctx := context.Background()

	_, err := gate.Issue(ctx, "admin")
	require.NoError(t, err)
	_, err = gate.Issue(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	*now = now.Add(6 * time.Second)
	_, err = gate.Issue(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestTokensAreUnique(t *testing.T) {
	gate, _, _ := newTestGate(time.Minute)
	ctx := context.Background()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := gate.Issue(ctx, "admin")
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}
}

func TestConcurrentIssueAndValidate(t *testing.T) {
	gate := NewGate(NewMemoryStore(), time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := gate.Issue(ctx, "admin")
			if err != nil {
				errs <- err
				return
			}
			if _, err := gate.Validate(ctx, token); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
