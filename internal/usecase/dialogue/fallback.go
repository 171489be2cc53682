package dialogue

import (
	"fmt"
	"strings"

	"mcbot/internal/usecase/ordering"
)

const anythingElseSuffix = "\nWhat else can I get for you?"

// FallbackHandler always answers with the next outstanding upsell for the current cart.
type FallbackHandler struct {
	kit *kit
}

func (h *FallbackHandler) Name() string { return "fallback" }

func (h *FallbackHandler) TryHandle(t *Turn) (*Response, error) {
	s := t.Session
	items := s.Items()
	directive := ordering.EvaluateUpsell(ordering.CartOrder(items), s.UpsellFlags)

	instruction := fmt.Sprintf(
		"You are McBot, a helpful McDonald's assistant. The customer's current order: %s. Now %s "+
			"Please phrase this as a friendly question.",
		ordering.InlineCart(items), directive.Message,
	)
	msg := h.kit.compose(t, instruction, directive.Message)
	if !strings.HasSuffix(strings.TrimSpace(msg), "?") {
		msg += anythingElseSuffix
	}

	s.UpsellFlags.Mark(directive.FlagsToSet()...)
	return reply(msg)
}
