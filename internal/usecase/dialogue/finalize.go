package dialogue

import (
	"fmt"
	"log"
	"strings"
	"time"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/ordering"

	"github.com/google/uuid"
)

const (
	emptyOrderReply    = "You haven't ordered anything yet. Please add items to your order."
	orderNotPlacedText = "Sorry, I couldn't place your order right now. Please try again."
)

// FinalizeHandler closes the cart into an Order and persists it.
type FinalizeHandler struct {
	kit *kit
}

func (h *FinalizeHandler) Name() string { return "finalize" }

func (h *FinalizeHandler) TryHandle(t *Turn) (*Response, error) {
	_, validated, err := t.Parsed()
	if err != nil {
		return nil, err
	}
	if !validated.IsValid || !validated.HasIntent(entities.IntentFinalizeOrder) {
		return nil, nil
	}

	s := t.Session
	if len(s.Order) == 0 {
		return reply(emptyOrderReply)
	}

	// a zero price marks a line the pricing resolver has not seen yet
	for _, it := range s.Order {
		if it.Price == 0 {
			it.Price = h.kit.pricing.PriceOf(*it)
		}
	}

	items := s.Items()
	directive := ordering.EvaluateUpsell(ordering.CartOrder(items, validated.Intents...), s.UpsellFlags)
	if directive.State != ordering.StateComplete {
		return reply(directive.Message)
	}

	order := entities.Order{
		ID:        uuid.NewString(),
		SessionID: s.ID,
		Items:     items,
		Total:     ordering.Total(items),
		Finalized: true,
		CreatedAt: time.Now().UTC(),
	}

	if h.kit.orders != nil {
		saved, err := h.kit.orders.Create(t.Ctx, order)
		if err != nil {
			log.Printf("[chat][finalize] persist failed session_id=%s order_id=%s err=%v", s.ID, order.ID, err)
			return reply(orderNotPlacedText)
		}
		order = saved
	}

	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	msg := fmt.Sprintf("Your order total is $%.2f. You ordered: %s", order.Total, strings.Join(names, ", "))

	s.ResetOrder()
	log.Printf("[chat][finalize] order placed session_id=%s order_id=%s total=%.2f", s.ID, order.ID, order.Total)
	return &Response{Text: msg, Finalized: true, Order: &order}, nil
}
