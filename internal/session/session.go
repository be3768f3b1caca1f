// Package session reads and writes the locally persisted login record.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/goaltrack/internal/store"
)

// Key is the storage key of the session record.
const Key = "user"

// ErrNoSession means no usable login record exists; callers send the user
// to the login entry point.
var ErrNoSession = errors.New("session: not logged in")

// KV is the persistent storage the record lives in.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// User identifies the logged-in user.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// record is the stored JSON shape: {"user": {"id": 7, ...}}.
type record struct {
	User *User `json:"user"`
}

// Load returns the stored user. A missing, unreadable, or id-less record
// yields ErrNoSession.
func Load(ctx context.Context, kv KV) (User, error) {
	raw, err := kv.Get(ctx, Key)
	if errors.Is(err, store.ErrNotFound) {
		return User{}, ErrNoSession
	}
	if err != nil {
		return User{}, fmt.Errorf("reading session: %w", err)
	}

	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return User{}, fmt.Errorf("%w: malformed record: %w", ErrNoSession, err)
	}
	if rec.User == nil || rec.User.ID <= 0 {
		return User{}, ErrNoSession
	}
	return *rec.User, nil
}

// Bootstrap resolves the current user id once at startup.
func Bootstrap(ctx context.Context, kv KV) (int, error) {
	u, err := Load(ctx, kv)
	if err != nil {
		return 0, err
	}
	return u.ID, nil
}

// Save writes u as the current session.
func Save(ctx context.Context, kv KV, u User) error {
	if u.ID <= 0 {
		return fmt.Errorf("session: user id must be positive, got %d", u.ID)
	}
	u.Name = strings.TrimSpace(u.Name)
	data, err := json.Marshal(record{User: &u})
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	return kv.Put(ctx, Key, string(data))
}

// Clear removes the current session.
func Clear(ctx context.Context, kv KV) error {
	return kv.Delete(ctx, Key)
}
