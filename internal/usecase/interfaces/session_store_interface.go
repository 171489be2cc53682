package interfaces

import (
	"context"

	"mcbot/internal/domain/entities"
)

//go:generate mockgen -source=session_store_interface.go -destination=mocks/session_store_interface_mock.go -package=mock_interfaces

// ISessionStore owns every Session.
//
// WithSession creates the session on first use (atomically) and runs fn while holding the
// session's turn lock, so at most one turn per session id is in flight. fn must not retain s.
type ISessionStore interface {
	WithSession(ctx context.Context, id string, fn func(s *entities.Session) error) error
	// View runs fn under the turn lock of an existing session; found is false when id is unknown.
	View(ctx context.Context, id string, fn func(s *entities.Session)) (found bool, err error)
}
