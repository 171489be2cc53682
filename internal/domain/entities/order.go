package entities

import "time"

// Intent tags produced by the NLU layer.
const (
	IntentAddItem             = "add_item"
	IntentFinalizeOrder       = "finalize_order"
	IntentAskForClarification = "ask_for_clarification"
	IntentAskForUpsell        = "ask_for_upsell"
	IntentCancelOrder         = "cancel_order"
	IntentAcceptCombo         = "accept_combo"
	IntentDeclineCombo        = "decline_combo"
	IntentAcceptDessert       = "accept_dessert"
	IntentDeclineDessert      = "decline_dessert"
	IntentRequestDrink        = "request_drink"
	IntentRequestSize         = "request_size"
	IntentRequestSauce        = "request_sauce"
)

// ParsedOrder is the NLU output for one turn. Names and categories are untrusted.
type ParsedOrder struct {
	Items   []Item   `json:"items"`
	Intents []string `json:"intents"`
}

func (p ParsedOrder) HasIntent(intent string) bool {
	return hasIntent(p.Intents, intent)
}

// ValidatedOrder is the validator's view of a ParsedOrder.
//
// Items keeps every item whose name exists in the catalog, including those with soft
// (category or size) errors. IsValid is true iff Errors is empty.
type ValidatedOrder struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
	Items   []Item   `json:"items"`
	Intents []string `json:"intents"`
}

func (v ValidatedOrder) HasIntent(intent string) bool {
	return hasIntent(v.Intents, intent)
}

func hasIntent(intents []string, intent string) bool {
	for _, i := range intents {
		if i == intent {
			return true
		}
	}
	return false
}

// Order is a finalized cart.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (session_id-index): session_id
type Order struct {
	ID        string    `json:"order_id"`
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	Total     float64   `json:"total"`
	Finalized bool      `json:"finalized"`
	CreatedAt time.Time `json:"created_at"`
}
