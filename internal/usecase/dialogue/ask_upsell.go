package dialogue

import (
	"fmt"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/ordering"
)

// AskUpsellHandler answers "what else do you have?" with the outstanding upsells for the
// current cart. Items parsed from the message are ignored.
type AskUpsellHandler struct {
	kit *kit
}

func (h *AskUpsellHandler) Name() string { return "ask_upsell" }

func (h *AskUpsellHandler) TryHandle(t *Turn) (*Response, error) {
	_, validated, err := t.Parsed()
	if err != nil {
		return nil, err
	}
	if !validated.IsValid || !validated.HasIntent(entities.IntentAskForUpsell) {
		return nil, nil
	}

	s := t.Session
	items := s.Items()
	directive := ordering.EvaluateUpsell(ordering.CartOrder(items), s.UpsellFlags)
	s.UpsellFlags.Mark(directive.FlagsToSet()...)

	instruction := fmt.Sprintf(
		"You are McBot, a friendly McDonald's assistant. The customer currently has: %s. "+
			"Based on this, suggest the next upsell helping them complete their order, "+
			"using the guidelines in the system message: %q",
		ordering.InlineCart(items), directive.Message,
	)
	return reply(h.kit.compose(t, instruction, directive.Message))
}
