package dialogue

import (
	"fmt"
	"strings"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/ordering"
)

const noBurgerForComboReply = "It doesn't look like you have a burger to turn into a combo. What else can I get for you?"

// ComboHandler upgrades a burger to a meal or records that the combo was declined.
type ComboHandler struct {
	kit *kit
}

func (h *ComboHandler) Name() string { return "combo" }

func (h *ComboHandler) TryHandle(t *Turn) (*Response, error) {
	_, validated, err := t.Parsed()
	if err != nil {
		return nil, err
	}
	if !validated.IsValid {
		return nil, nil
	}

	switch {
	case validated.HasIntent(entities.IntentAcceptCombo), validated.HasIntent(entities.IntentRequestDrink):
		return h.accept(t)
	case validated.HasIntent(entities.IntentDeclineCombo):
		return h.decline(t)
	}
	return nil, nil
}

func (h *ComboHandler) accept(t *Turn) (*Response, error) {
	s := t.Session

	var combo *entities.Item
	for _, it := range s.Order {
		if it.Category == entities.CategoryBurger {
			combo = it
			break
		}
	}
	if combo == nil {
		return reply(noBurgerForComboReply)
	}

	combo.UpgradeToCombo()
	combo.Price = h.kit.pricing.PriceOf(*combo)
	s.UpsellFlags.Mark(entities.FlagComboOffered)

	slots, _ := h.kit.catalog.ComboSlotDefinition(combo.Name)
	pending := h.kit.slots.Begin(combo, slots)
	s.PendingSlot = pending
	if pending == nil {
		msg := fmt.Sprintf("Your %s is ready.\n%s\nWould you like to add anything else?", combo.Name, ordering.FormatCart(s.Items()))
		return reply(msg)
	}

	s.UpsellFlags.Mark(entities.FlagDrinkRequested)
	skippable := ""
	if pending.Slot == ordering.SlotSauces || containsString(pending.Remaining, ordering.SlotSauces) {
		s.UpsellFlags.Mark(entities.FlagSauceOffered)
		skippable = " If sauces are next, tell them they can skip by saying 'no'."
	}

	side := "fries"
	if sides := slots[ordering.SlotFries]; len(sides) > 0 {
		side = sides[0]
	}
	options := strings.Join(pending.Options, ", ")

	fallback := fmt.Sprintf("Great choice! Your %s comes with %s. Which %s would you like? Options: %s", combo.Name, side, pendingNoun(pending.Slot), options)
	instruction := fmt.Sprintf(
		"You are McBot, McDonald's assistant. The customer upgraded to a %s combo which includes %s by default. "+
			"Now ask which %s they'd like and list the options: %s.%s",
		combo.Name, side, pendingNoun(pending.Slot), options, skippable,
	)
	return reply(h.kit.compose(t, instruction, fallback))
}

func (h *ComboHandler) decline(t *Turn) (*Response, error) {
	s := t.Session
	s.UpsellFlags.Mark(entities.FlagComboOffered)

	items := s.Items()
	directive := ordering.EvaluateUpsell(ordering.CartOrder(items), s.UpsellFlags)
	s.UpsellFlags.Mark(directive.FlagsToSet()...)

	fallback := "No problem, we'll keep it as is.\n" + directive.Message
	instruction := fmt.Sprintf(
		"You are McBot. The customer kept their burger as-is. Their order now: %s. Next, %s",
		ordering.InlineCart(items), directive.Message,
	)
	return reply(h.kit.compose(t, instruction, fallback))
}

func pendingNoun(slot string) string {
	switch slot {
	case ordering.SlotDrinks:
		return "drink"
	case ordering.SlotSauces:
		return "sauce"
	default:
		return slot
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
