package dialogue

import (
	"fmt"
	"strings"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/ordering"
)

// DessertHandler offers a dessert once per order and handles the answer.
type DessertHandler struct {
	kit *kit
}

func (h *DessertHandler) Name() string { return "dessert" }

func (h *DessertHandler) TryHandle(t *Turn) (*Response, error) {
	_, validated, err := t.Parsed()
	if err != nil {
		return nil, err
	}
	if !validated.IsValid {
		return nil, nil
	}

	s := t.Session
	desserts := h.kit.dessertNames()
	options := strings.Join(desserts, ", ")

	if s.HasCategory(entities.CategoryBurger, entities.CategoryCombo) && !s.UpsellFlags.Offered(entities.FlagDessertOffered) {
		s.UpsellFlags.Mark(entities.FlagDessertOffered)
		return reply("Would you like to add a dessert? Here are our options: " + options)
	}

	switch {
	case validated.HasIntent(entities.IntentAcceptDessert):
		s.UpsellFlags.Mark(entities.FlagDessertOffered)
		it, ok := h.pickDessert(t, validated, desserts)
		if !ok {
			return reply("Sure! Which dessert would you like? Options: " + options)
		}
		s.Order = append(s.Order, &it)
		msg := fmt.Sprintf("Great! I've added %s at $%.2f.\n%s\nIs there anything else you'd like?", it.Name, it.Price, ordering.FormatCart(s.Items()))
		return reply(msg)

	case validated.HasIntent(entities.IntentDeclineDessert):
		s.UpsellFlags.Mark(entities.FlagDessertOffered)
		return reply("No problem, no dessert. Is there anything else you'd like?")
	}
	return nil, nil
}

// pickDessert prefers a dessert the parser found and falls back to matching the raw text.
func (h *DessertHandler) pickDessert(t *Turn, validated entities.ValidatedOrder, desserts []string) (entities.Item, bool) {
	for _, it := range validated.Items {
		if it.Category == entities.CategoryDessert {
			it.Price = h.kit.pricing.PriceOf(it)
			return it, true
		}
	}
	name, ok := ordering.MatchDessert(t.Message, desserts)
	if !ok {
		return entities.Item{}, false
	}
	it := entities.Item{Name: name, Category: entities.CategoryDessert}
	it.Price = h.kit.pricing.PriceOf(it)
	return it, true
}
