package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/goaltrack/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "goaltrack.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBootstrapWithoutRecord(t *testing.T) {
	s := openStore(t)
	if _, err := Bootstrap(context.Background(), s); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}

func TestSaveThenBootstrap(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	if err := Save(ctx, s, User{ID: 7, Name: " ada "}); err != nil {
		t.Fatal(err)
	}
	raw, err := s.Get(ctx, Key)
	if err != nil {
		t.Fatal(err)
	}
	if raw != `{"user":{"id":7,"name":"ada"}}` {
		t.Errorf("stored record = %s", raw)
	}

	id, err := Bootstrap(ctx, s)
	if err != nil {
		t.Fatal(err)
	}
	if id != 7 {
		t.Errorf("id = %d, want 7", id)
	}

	if err := Clear(ctx, s); err != nil {
		t.Fatal(err)
	}
	if _, err := Bootstrap(ctx, s); !errors.Is(err, ErrNoSession) {
		t.Errorf("after clear: err = %v", err)
	}
}

func TestMalformedRecords(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	for _, raw := range []string{`not json`, `{}`, `{"user":null}`, `{"user":{"name":"x"}}`} {
		if err := s.Put(ctx, Key, raw); err != nil {
			t.Fatal(err)
		}
		if _, err := Bootstrap(ctx, s); !errors.Is(err, ErrNoSession) {
			t.Errorf("%s: err = %v, want ErrNoSession", raw, err)
		}
	}
}

func TestSaveRejectsInvalidID(t *testing.T) {
	s := openStore(t)
	if err := Save(context.Background(), s, User{ID: 0}); err == nil {
		t.Error("expected error for id 0")
	}
}
