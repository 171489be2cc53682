package dialogue

import (
	"fmt"
	"strings"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/ordering"
)

const noMenuMatchReply = "I'm sorry, I couldn't match that to the menu. Could you specify exactly what you'd like?"

var slotRequestIntents = []string{
	entities.IntentRequestDrink,
	entities.IntentRequestSize,
	entities.IntentRequestSauce,
}

func hasSlotRequest(intents []string) bool {
	for _, i := range intents {
		for _, r := range slotRequestIntents {
			if i == r {
				return true
			}
		}
	}
	return false
}

// AddItemHandler appends newly requested items to the cart, skipping names already in it.
type AddItemHandler struct {
	kit *kit
}

func (h *AddItemHandler) Name() string { return "add_item" }

func (h *AddItemHandler) TryHandle(t *Turn) (*Response, error) {
	parsed, validated, err := t.Parsed()
	if err != nil {
		return nil, err
	}

	if !validated.IsValid && hasSlotRequest(parsed.Intents) {
		return nil, nil
	}

	if validated.IsValid {
		return h.addValidated(t, validated)
	}
	return h.addDessertFallback(t, parsed)
}

func (h *AddItemHandler) addValidated(t *Turn, validated entities.ValidatedOrder) (*Response, error) {
	if !validated.HasIntent(entities.IntentAddItem) || len(validated.Items) == 0 {
		return nil, nil
	}

	s := t.Session
	var lines []string
	var addedBurger *entities.Item
	for _, candidate := range validated.Items {
		if s.HasItemNamed(candidate.Name) {
			continue
		}
		it := candidate
		it.Price = h.kit.pricing.PriceOf(it)
		s.Order = append(s.Order, &it)
		lines = append(lines, fmt.Sprintf("Added: %s - $%.2f", it.Name, it.Price))
		if it.Category == entities.CategoryBurger && addedBurger == nil {
			addedBurger = &it
		}
	}

	if addedBurger != nil && !s.UpsellFlags.Offered(entities.FlagComboOffered) {
		s.UpsellFlags.Mark(entities.FlagComboOffered)
		lines = append(lines, fmt.Sprintf("Would you like to make your %s a combo?", addedBurger.Name))
		return reply(strings.Join(lines, "\n"))
	}

	lines = append(lines, ordering.FormatCart(s.Items()), "Would you like to add anything else?")
	return reply(strings.Join(lines, "\n"))
}

// addDessertFallback repairs dessert names the validator rejected before giving up.
func (h *AddItemHandler) addDessertFallback(t *Turn, parsed entities.ParsedOrder) (*Response, error) {
	s := t.Session
	desserts := h.kit.dessertNames()

	var added []string
	for _, candidate := range parsed.Items {
		if candidate.Category != entities.CategoryDessert {
			continue
		}
		name, ok := ordering.MatchDessert(candidate.Name, desserts)
		if !ok || s.HasItemNamed(name) {
			continue
		}
		it := entities.Item{Name: name, Category: entities.CategoryDessert}
		it.Price = h.kit.pricing.PriceOf(it)
		s.Order = append(s.Order, &it)
		added = append(added, fmt.Sprintf("%s - $%.2f", it.Name, it.Price))
	}

	if len(added) == 0 {
		return reply(noMenuMatchReply)
	}

	lines := []string{
		"Added dessert: " + strings.Join(added, ", "),
		ordering.FormatCart(s.Items()),
		"Would you like to add anything else?",
	}
	return reply(strings.Join(lines, "\n"))
}
