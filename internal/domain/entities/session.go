package entities

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleSystem Role = "system"
)

// Turn is one history entry handed to the NLU and text-generation collaborators.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Upsell kinds tracked per session. Flags only move from not offered to offered.
const (
	FlagComboOffered      = "combo_offered"
	FlagSauceOffered      = "sauce_offered"
	FlagDessertOffered    = "dessert_offered"
	FlagDrinkRequested    = "drink_requested"
	FlagDoubleDealApplied = "double_deal_applied"
)

// UpsellFlags records which upsells were already offered or applied.
type UpsellFlags map[string]bool

func (f UpsellFlags) Offered(kind string) bool {
	return f[kind]
}

// Mark sets every kind to offered.
func (f UpsellFlags) Mark(kinds ...string) {
	for _, k := range kinds {
		f[k] = true
	}
}

// Clone returns an independent copy.
func (f UpsellFlags) Clone() UpsellFlags {
	out := make(UpsellFlags, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// PendingSlot is an in-progress combo customization.
//
// Combo points at an Item owned by the session cart; the slot never owns it.
type PendingSlot struct {
	Slot      string              `json:"slot"`
	Options   []string            `json:"options"`
	Remaining []string            `json:"remaining"`
	Combo     *Item               `json:"-"`
	All       map[string][]string `json:"-"`
}

// Session is one conversation. It is owned by the session store; handlers borrow it for one turn.
type Session struct {
	ID          string
	History     []Turn
	Order       []*Item
	UpsellFlags UpsellFlags
	PendingSlot *PendingSlot
	CreatedAt   time.Time
}

func NewSession(id string) *Session {
	return &Session{
		ID:          id,
		History:     []Turn{},
		Order:       []*Item{},
		UpsellFlags: UpsellFlags{},
		CreatedAt:   time.Now().UTC(),
	}
}

func (s *Session) Record(role Role, content string) {
	s.History = append(s.History, Turn{Role: role, Content: content})
}

// Items returns a value snapshot of the cart.
func (s *Session) Items() []Item {
	out := make([]Item, 0, len(s.Order))
	for _, it := range s.Order {
		out = append(out, *it)
	}
	return out
}

func (s *Session) HasItemNamed(name string) bool {
	for _, it := range s.Order {
		if it.Name == name {
			return true
		}
	}
	return false
}

func (s *Session) HasCategory(cats ...Category) bool {
	for _, it := range s.Order {
		for _, c := range cats {
			if it.Category == c {
				return true
			}
		}
	}
	return false
}

// ResetOrder clears the cart and any combo customization in progress.
func (s *Session) ResetOrder() {
	s.Order = []*Item{}
	s.PendingSlot = nil
}
