package sessions

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mcbot/internal/domain/entities"
)

func TestStore_WithSessionCreatesOnce(t *testing.T) {
	store := NewStore(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.WithSession(context.Background(), "s1", func(s *entities.Session) error {
				s.Record(entities.RoleUser, "hi")
				return nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if store.Len() != 1 {
		t.Fatalf("expected a single session, got %d", store.Len())
	}
	found, err := store.View(context.Background(), "s1", func(s *entities.Session) {
		if len(s.History) != 50 {
			t.Errorf("expected 50 serialized turns, got %d", len(s.History))
		}
	})
	if err != nil || !found {
		t.Fatalf("expected session, found=%t err=%v", found, err)
	}
}

func TestStore_SerializesTurnsPerSession(t *testing.T) {
	store := NewStore(0)

	entered := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = store.WithSession(context.Background(), "s1", func(*entities.Session) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	t.Run("same session waits and honours ctx", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := store.WithSession(ctx, "s1", func(*entities.Session) error {
			t.Fatalf("turn must not run while another is in flight")
			return nil
		})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", err)
		}
	})

	t.Run("other sessions proceed", func(t *testing.T) {
		ran := false
		err := store.WithSession(context.Background(), "s2", func(*entities.Session) error {
			ran = true
			return nil
		})
		if err != nil || !ran {
			t.Fatalf("expected independent session to run, err=%v", err)
		}
	})

	close(release)
}

func TestStore_ViewUnknown(t *testing.T) {
	store := NewStore(0)
	found, err := store.View(context.Background(), "missing", func(*entities.Session) {
		t.Fatalf("fn must not run for unknown sessions")
	})
	if found || err != nil {
		t.Fatalf("expected not found, got found=%t err=%v", found, err)
	}
	if store.Len() != 0 {
		t.Fatalf("View must not create sessions")
	}
}

func TestStore_WithSessionReturnsFnError(t *testing.T) {
	store := NewStore(0)
	boom := errors.New("boom")
	if err := store.WithSession(context.Background(), "s1", func(*entities.Session) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
}

func TestStore_Sweep(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Hour)
	store.now = func() time.Time { return now }

	noop := func(*entities.Session) error { return nil }
	_ = store.WithSession(context.Background(), "idle", noop)

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = store.WithSession(context.Background(), "busy", func(*entities.Session) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	now = now.Add(2 * time.Hour)
	_ = store.WithSession(context.Background(), "fresh", noop)

	if removed := store.Sweep(); removed != 1 {
		t.Fatalf("expected only the idle session evicted, got %d", removed)
	}
	if found, _ := store.View(context.Background(), "idle", func(*entities.Session) {}); found {
		t.Fatalf("idle session should be gone")
	}

	close(release)
	<-done
	if found, _ := store.View(context.Background(), "busy", func(*entities.Session) {}); !found {
		t.Fatalf("in-flight session must survive the sweep")
	}
}
