package ordering

import (
	"fmt"
	"strings"

	"mcbot/internal/domain/entities"
)

type UpsellState string

const (
	StateComplete   UpsellState = "complete"
	StateIncomplete UpsellState = "incomplete"
	StateError      UpsellState = "error"
)

// Upsell actions returned by EvaluateUpsell.
const (
	ActionFinalize             = "finalize"
	ActionOfferCombo           = "offer_combo"
	ActionOfferSauce           = "offer_sauce"
	ActionOfferDessert         = "offer_dessert"
	ActionRequestDrinkForCombo = "request_drink_for_combo"
	ActionApplyDoubleDeal      = "apply_double_deal"
	ActionRequestClarification = "request_clarification"
)

const (
	promptCombo        = "Would you like to make it a combo?"
	promptDessert      = "Would you like to add a dessert?"
	promptComboDrink   = "Which drink would you like with your combo?"
	promptDoubleDeal   = "We applied a double deal discount!"
	promptAnythingElse = "Is there anything else you'd like to add?"
)

var actionFlags = map[string]string{
	ActionOfferCombo:           entities.FlagComboOffered,
	ActionOfferSauce:           entities.FlagSauceOffered,
	ActionOfferDessert:         entities.FlagDessertOffered,
	ActionRequestDrinkForCombo: entities.FlagDrinkRequested,
	ActionApplyDoubleDeal:      entities.FlagDoubleDealApplied,
}

// UpsellDirective is the engine's next-step decision.
type UpsellDirective struct {
	Message string
	Actions []string
	State   UpsellState
}

// FlagsToSet lists the upsell flags the caller should mark once it commits the reply.
func (d UpsellDirective) FlagsToSet() []string {
	flags := make([]string, 0, len(d.Actions))
	for _, a := range d.Actions {
		if f, ok := actionFlags[a]; ok {
			flags = append(flags, f)
		}
	}
	return flags
}

func (d UpsellDirective) HasAction(action string) bool {
	for _, a := range d.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// EvaluateUpsell decides which upsells are still outstanding for order given flags.
//
// It never mutates its inputs, so evaluating the same order and flags twice yields the
// same directive.
func EvaluateUpsell(order entities.ValidatedOrder, flags entities.UpsellFlags) UpsellDirective {
	if !order.IsValid {
		return UpsellDirective{
			Message: "There are issues with your order:\n" + strings.Join(order.Errors, "\n"),
			Actions: []string{ActionRequestClarification},
			State:   StateError,
		}
	}

	if order.HasIntent(entities.IntentFinalizeOrder) {
		return UpsellDirective{
			Message: fmt.Sprintf("Your order is complete. Total items: %d, total $%.2f. Would you like to confirm?", len(order.Items), Total(order.Items)),
			Actions: []string{ActionFinalize},
			State:   StateComplete,
		}
	}

	var burgers, combos int
	var hasDessert, hasDrink bool
	for _, it := range order.Items {
		switch it.Category {
		case entities.CategoryBurger:
			burgers++
		case entities.CategoryCombo:
			combos++
		case entities.CategoryDessert:
			hasDessert = true
		case entities.CategoryDrink:
			hasDrink = true
		}
	}

	var lines []string
	actions := []string{}

	if burgers > 0 && !flags.Offered(entities.FlagComboOffered) {
		actions = append(actions, ActionOfferCombo)
		lines = append(lines, promptCombo)
	}

	if combos > 0 {
		if !flags.Offered(entities.FlagSauceOffered) {
			actions = append(actions, ActionOfferSauce)
		}
		if !hasDessert && !flags.Offered(entities.FlagDessertOffered) {
			actions = append(actions, ActionOfferDessert)
			lines = append(lines, promptDessert)
		}
		if !hasDrink && !flags.Offered(entities.FlagDrinkRequested) {
			actions = append(actions, ActionRequestDrinkForCombo)
			lines = append(lines, promptComboDrink)
		}
	}

	if burgers >= 2 && !flags.Offered(entities.FlagDoubleDealApplied) {
		actions = append(actions, ActionApplyDoubleDeal)
		lines = append(lines, promptDoubleDeal)
	}

	if len(lines) == 0 {
		lines = append(lines, promptAnythingElse)
	}

	return UpsellDirective{
		Message: strings.Join(lines, "\n"),
		Actions: actions,
		State:   StateIncomplete,
	}
}

// CartOrder wraps the current cart as a valid order with the given intents.
func CartOrder(items []entities.Item, intents ...string) entities.ValidatedOrder {
	if intents == nil {
		intents = []string{}
	}
	return entities.ValidatedOrder{IsValid: true, Errors: []string{}, Items: items, Intents: intents}
}
