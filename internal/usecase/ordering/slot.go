package ordering

import (
	"fmt"
	"strings"

	"mcbot/internal/domain/entities"
)

const (
	SlotFries  = "fries"
	SlotDrinks = "drinks"
	SlotSauces = "sauces"
)

// slotSynonyms are accepted in addition to a slot's own options, but only when the
// target is one of those options.
var slotSynonyms = map[string]string{
	"coke":        "Coca-Cola",
	"coca cola":   "Coca-Cola",
	"diet":        "Diet Coke",
	"fanta":       "Fanta Orange",
	"tea":         "Iced Tea",
	"ff":          "French Fries",
	"fries":       "French Fries",
	"potato dips": "Potato Dips",
	"dip":         "Potato Dips",
	"bbq":         "BBQ Sauce",
	"tartar":      "Tartar Sauce",
}

var skipWords = map[string]bool{
	"none": true,
	"no":   true,
	"skip": true,
}

// SlotStep is the result of feeding one utterance to the slot machine.
//
// When Resolved is false the pending slot is unchanged and Reply re-prompts.
// Next is nil once every slot is filled.
type SlotStep struct {
	Resolved bool
	Item     *entities.Item
	Next     *entities.PendingSlot
	Reply    string
}

// SlotMachine drives combo customization: drinks first, then sauces when the combo
// defines them.
type SlotMachine struct {
	pricing *PriceResolver
}

func NewSlotMachine(pricing *PriceResolver) *SlotMachine {
	return &SlotMachine{pricing: pricing}
}

// Begin seeds the pending slot for a freshly upgraded combo. It returns nil when the
// combo has no customizable slot.
func (m *SlotMachine) Begin(combo *entities.Item, slots map[string][]string) *entities.PendingSlot {
	seq := make([]string, 0, 2)
	if len(slots[SlotDrinks]) > 0 {
		seq = append(seq, SlotDrinks)
	}
	if len(slots[SlotSauces]) > 0 {
		seq = append(seq, SlotSauces)
	}
	if len(seq) == 0 {
		return nil
	}
	return &entities.PendingSlot{
		Slot:      seq[0],
		Options:   append([]string(nil), slots[seq[0]]...),
		Remaining: seq[1:],
		Combo:     combo,
		All:       slots,
	}
}

// Step resolves text against the current slot. cart is the order before this step and is
// only used to render the closing summary.
func (m *SlotMachine) Step(p *entities.PendingSlot, text string, cart []entities.Item) SlotStep {
	choice := Normalize(text)

	var selected string
	if p.Slot == SlotSauces && skipWords[choice] {
		selected = ""
	} else {
		opt, ok := resolveOption(choice, p.Options)
		if !ok {
			return SlotStep{
				Reply: fmt.Sprintf("Sorry, I didn't catch that. Please choose one of the following %s: %s", p.Slot, strings.Join(p.Options, ", ")),
			}
		}
		selected = opt
	}

	step := SlotStep{Resolved: true}
	if selected != "" {
		it := entities.Item{Name: selected, Category: entities.CategoryFromSlot(p.Slot)}
		it.Price = m.pricing.PriceOf(it)
		step.Item = &it
		cart = append(cart, it)
	}

	if len(p.Remaining) > 0 {
		nxt := p.Remaining[0]
		opts := p.All[nxt]
		step.Next = &entities.PendingSlot{
			Slot:      nxt,
			Options:   append([]string(nil), opts...),
			Remaining: append([]string(nil), p.Remaining[1:]...),
			Combo:     p.Combo,
			All:       p.All,
		}
		step.Reply = fmt.Sprintf("What would you like for your %s? Options: %s", nxt, strings.Join(opts, ", "))
		if nxt == SlotSauces {
			step.Reply += " (say 'no' to skip)"
		}
		return step
	}

	added := selected
	if added == "" {
		added = "No sauce"
	}
	step.Reply = fmt.Sprintf("Got it! %s added to your combo.\n%s\nWould you like to add anything else?", added, FormatCart(cart))
	return step
}

func resolveOption(choice string, options []string) (string, bool) {
	if choice == "" {
		return "", false
	}
	lookup := make(map[string]string, len(options))
	for _, opt := range options {
		lookup[Normalize(opt)] = opt
	}
	if opt, ok := lookup[choice]; ok {
		return opt, true
	}
	if target, ok := slotSynonyms[choice]; ok {
		for _, opt := range options {
			if opt == target {
				return opt, true
			}
		}
	}
	return "", false
}
