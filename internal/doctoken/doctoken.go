package doctoken

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"

	tokenBytes = 32
)

var (
	ErrInvalidToken = errors.New("invalid or expired docs token")
	ErrTokenExpired = errors.New("docs token already expired")
)

// Entry is what a store keeps per token.
type Entry struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store holds issued tokens. Get reports found=false for unknown tokens.
type Store interface {
	Put(ctx context.Context, token string, entry Entry) error
	Get(ctx context.Context, token string) (Entry, bool, error)
	Sweep(ctx context.Context, now time.Time) error
}

// Gate issues short lived tokens for the docs page and validates them.
// Tokens are not consumed on use; they stay valid until they expire.
type Gate struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

func NewGate(store Store, ttl time.Duration) *Gate {
	return &Gate{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (g *Gate) Issue(ctx context.Context, username string) (string, error) {
	now := g.now()

	if err := g.store.Sweep(ctx, now); err != nil {
		return "", fmt.Errorf("sweep docs tokens failed: %w", err)
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}

	if err := g.store.Put(ctx, token, Entry{Username: username, ExpiresAt: now.Add(g.ttl)}); err != nil {
		return "", fmt.Errorf("store docs token failed: %w", err)
	}

	return token, nil
}

// Validate returns the username the token was issued to.
func (g *Gate) Validate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	entry, ok, err := g.store.Get(ctx, token)
	if err != nil {
		return "", fmt.Errorf("get docs token failed: %w", err)
	}

	if !ok || !g.now().Before(entry.ExpiresAt) {
		return "", ErrInvalidToken
	}

	return entry.Username, nil
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate docs token failed: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
