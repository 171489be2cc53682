package entities

import "strings"

// Category is the singular item kind used inside a session cart.
//
// The catalog stores the plural form (burgers, drinks, ...); see CatalogCategory.
type Category string

const (
	CategoryBurger  Category = "burger"
	CategoryDrink   Category = "drink"
	CategoryCombo   Category = "combo"
	CategoryFries   Category = "fries"
	CategoryDessert Category = "dessert"
	CategorySauce   Category = "sauce"
)

// CatalogCategory returns the menu vocabulary for c (burger -> burgers).
func (c Category) CatalogCategory() string {
	switch c {
	case CategoryFries:
		return "fries"
	case "":
		return ""
	default:
		return string(c) + "s"
	}
}

// CategoryFromSlot converts a combo slot name into the item category it produces (drinks -> drink).
func CategoryFromSlot(slot string) Category {
	if slot == "fries" {
		return CategoryFries
	}
	return Category(strings.TrimSuffix(slot, "s"))
}

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Item is one order line.
//
// Price is always assigned by the pricing resolver; values coming from the NLU layer are ignored.
// A zero price means the line has not been priced yet.
type Item struct {
	Name     string   `json:"name"`
	Category Category `json:"type"`
	Size     Size     `json:"size,omitempty"`
	Price    float64  `json:"price"`
}

// ComboSuffix is appended to a burger name when it is upgraded to a meal.
const ComboSuffix = " Meal"

// UpgradeToCombo turns a burger line into its combo counterpart in place.
// Re-pricing is the caller's job and must follow immediately.
func (it *Item) UpgradeToCombo() {
	it.Category = CategoryCombo
	if !strings.Contains(it.Name, strings.TrimSpace(ComboSuffix)) {
		it.Name += ComboSuffix
	}
}
