package dialogue

import "mcbot/internal/domain/entities"

// CancelHandler drops the cart and starts a new order cycle, upsell flags included.
type CancelHandler struct{}

func (h *CancelHandler) Name() string { return "cancel" }

func (h *CancelHandler) TryHandle(t *Turn) (*Response, error) {
	parsed, _, err := t.Parsed()
	if err != nil {
		return nil, err
	}
	if !parsed.HasIntent(entities.IntentCancelOrder) {
		return nil, nil
	}

	s := t.Session
	if len(s.Order) == 0 && s.PendingSlot == nil {
		return reply("There's nothing to cancel yet. What can I get you?")
	}
	s.ResetOrder()
	s.UpsellFlags = entities.UpsellFlags{}
	return reply("Your order has been cancelled. What can I get you instead?")
}
