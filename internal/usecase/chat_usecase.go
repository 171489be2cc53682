package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/dialogue"
	"mcbot/internal/usecase/interfaces"
	"mcbot/internal/usecase/ordering"

	"github.com/google/uuid"
)

var (
	ErrInvalidMessage  = errors.New("message is required")
	ErrSessionNotFound = errors.New("session not found")
)

// ChatResult is the outcome of one turn.
type ChatResult struct {
	SessionID string
	Response  string
	Finalized bool
	Order     *entities.Order
}

// SessionView is a read-only snapshot of a session.
type SessionView struct {
	ID          string
	History     []entities.Turn
	Items       []entities.Item
	Total       float64
	UpsellFlags entities.UpsellFlags
	PendingSlot *entities.PendingSlot
	CreatedAt   time.Time
}

// IChatUseCase is the turn boundary of the ordering dialogue.
//
// Handle creates a session when sessionID is empty or unknown and runs the message through
// the handler pipeline while holding that session's turn lock.
type IChatUseCase interface {
	Handle(ctx context.Context, sessionID, message string) (ChatResult, error)
	GetSession(ctx context.Context, sessionID string) (SessionView, error)
}

type ChatUseCase struct {
	store    interfaces.ISessionStore
	pipeline *dialogue.Pipeline
	newID    func() string
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(store interfaces.ISessionStore, pipeline *dialogue.Pipeline) *ChatUseCase {
	return &ChatUseCase{store: store, pipeline: pipeline, newID: uuid.NewString}
}

func (u *ChatUseCase) Handle(ctx context.Context, sessionID, message string) (ChatResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatResult{}, ErrInvalidMessage
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = u.newID()
		log.Printf("[chat][usecase] new session_id=%s", sessionID)
	}

	var resp dialogue.Response
	err := u.store.WithSession(ctx, sessionID, func(s *entities.Session) error {
		var runErr error
		resp, runErr = u.pipeline.Run(ctx, s, message)
		return runErr
	})
	if err != nil {
		log.Printf("[chat][usecase] turn failed session_id=%s err=%v", sessionID, err)
		return ChatResult{}, err
	}

	return ChatResult{
		SessionID: sessionID,
		Response:  resp.Text,
		Finalized: resp.Finalized,
		Order:     resp.Order,
	}, nil
}

func (u *ChatUseCase) GetSession(ctx context.Context, sessionID string) (SessionView, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return SessionView{}, ErrSessionNotFound
	}

	var view SessionView
	found, err := u.store.View(ctx, sessionID, func(s *entities.Session) {
		items := s.Items()
		view = SessionView{
			ID:          s.ID,
			History:     append([]entities.Turn(nil), s.History...),
			Items:       items,
			Total:       ordering.Total(items),
			UpsellFlags: s.UpsellFlags.Clone(),
			CreatedAt:   s.CreatedAt,
		}
		if s.PendingSlot != nil {
			p := *s.PendingSlot
			p.Options = append([]string(nil), p.Options...)
			p.Remaining = append([]string(nil), p.Remaining...)
			p.Combo = nil
			p.All = nil
			view.PendingSlot = &p
		}
	})
	if err != nil {
		return SessionView{}, err
	}
	if !found {
		return SessionView{}, ErrSessionNotFound
	}
	return view, nil
}
