// Package dialogue runs one conversational turn through an ordered chain of intent
// handlers. The first handler that answers wins; the fallback handler always answers.
package dialogue

import (
	"context"
	"fmt"
	"log"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/interfaces"
	"mcbot/internal/usecase/ordering"
)

// Response is what a turn sends back to the customer.
type Response struct {
	Text      string
	Finalized bool
	Order     *entities.Order
}

// Handler answers a turn or passes it on by returning a nil Response.
//
// A handler that returns interfaces.ErrParseFailure must not have touched the session.
type Handler interface {
	Name() string
	TryHandle(t *Turn) (*Response, error)
}

// Turn carries one inbound message and the session it mutates. The NLU result is computed
// on first use and shared by every handler of the turn.
type Turn struct {
	Ctx     context.Context
	Session *entities.Session
	Message string

	parser    interfaces.IOrderParser
	validator *ordering.Validator

	done      bool
	parsed    entities.ParsedOrder
	validated entities.ValidatedOrder
	err       error
}

// Parsed returns the NLU parse of the message and its validation.
func (t *Turn) Parsed() (entities.ParsedOrder, entities.ValidatedOrder, error) {
	if t.done {
		return t.parsed, t.validated, t.err
	}
	t.done = true

	history := append([]entities.Turn(nil), t.Session.History...)
	parsed, err := t.parser.Parse(t.Ctx, t.Message, history)
	if err != nil {
		log.Printf("[chat][turn] parse failed session_id=%s err=%v", t.Session.ID, err)
		t.err = fmt.Errorf("%w: %v", interfaces.ErrParseFailure, err)
		return entities.ParsedOrder{}, entities.ValidatedOrder{}, t.err
	}

	t.parsed = parsed
	t.validated = t.validator.Validate(parsed)
	log.Printf("[chat][turn] parsed session_id=%s items=%d intents=%v valid=%t", t.Session.ID, len(parsed.Items), parsed.Intents, t.validated.IsValid)
	return t.parsed, t.validated, nil
}

// kit bundles the collaborators handlers share.
type kit struct {
	catalog  interfaces.ICatalog
	pricing  *ordering.PriceResolver
	slots    *ordering.SlotMachine
	composer interfaces.IMessageComposer
	orders   interfaces.IOrderRepository
}

// compose asks the text generator for a reply and falls back to the deterministic text
// when it is missing, fails or answers with nothing.
func (k *kit) compose(t *Turn, instruction, fallback string) string {
	if k.composer == nil {
		return fallback
	}
	history := append([]entities.Turn(nil), t.Session.History...)
	msg, err := k.composer.Compose(t.Ctx, history, instruction)
	if err != nil {
		log.Printf("[chat][compose] failed session_id=%s err=%v", t.Session.ID, err)
		return fallback
	}
	if msg == "" {
		return fallback
	}
	return msg
}

func (k *kit) dessertNames() []string {
	items := k.catalog.ItemsByCategory("desserts")
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}

func reply(text string) (*Response, error) {
	return &Response{Text: text}, nil
}
