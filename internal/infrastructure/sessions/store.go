package sessions

import (
	"context"
	"log"
	"sync"
	"time"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/interfaces"
)

// entry pairs a session with its turn lock. turn is a one-slot channel so that waiting
// for the lock can be abandoned when the caller's context ends.
type entry struct {
	session  *entities.Session
	turn     chan struct{}
	refs     int
	lastSeen time.Time
}

// Store keeps every live session in memory.
//
// Sessions are created on first use. A session that has been idle for longer than the TTL
// and has no turn in flight or waiting is dropped by Sweep.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

var _ interfaces.ISessionStore = (*Store)(nil)

// NewStore returns an empty store. A ttl <= 0 disables eviction.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: map[string]*entry{},
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Store) WithSession(ctx context.Context, id string, fn func(*entities.Session) error) error {
	e := s.checkout(id, true)
	defer s.checkin(e)

	if err := acquire(ctx, e); err != nil {
		return err
	}
	defer func() { <-e.turn }()

	return fn(e.session)
}

func (s *Store) View(ctx context.Context, id string, fn func(*entities.Session)) (bool, error) {
	e := s.checkout(id, false)
	if e == nil {
		return false, nil
	}
	defer s.checkin(e)

	if err := acquire(ctx, e); err != nil {
		return true, err
	}
	defer func() { <-e.turn }()

	fn(e.session)
	return true, nil
}

// checkout pins the entry for id so Sweep leaves it alone. It returns nil when the session
// does not exist and create is false.
func (s *Store) checkout(id string, create bool) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		if !create {
			return nil
		}
		e = &entry{
			session: entities.NewSession(id),
			turn:    make(chan struct{}, 1),
		}
		s.sessions[id] = e
		log.Printf("[sessions][store] created session_id=%s", id)
	}
	e.refs++
	e.lastSeen = s.now()
	return e
}

func (s *Store) checkin(e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.refs--
	e.lastSeen = s.now()
}

func acquire(ctx context.Context, e *entry) error {
	select {
	case e.turn <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sweep drops idle sessions and returns how many were removed.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, e := range s.sessions {
		if e.refs > 0 || e.lastSeen.After(cutoff) {
			continue
		}
		delete(s.sessions, id)
		removed++
	}
	if removed > 0 {
		log.Printf("[sessions][store] evicted=%d remaining=%d", removed, len(s.sessions))
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
