package entities

// MenuItem is one catalog entry. Category uses the catalog's plural vocabulary.
type MenuItem struct {
	Name     string  `json:"name" yaml:"name"`
	Category string  `json:"category" yaml:"category"`
	Price    float64 `json:"price" yaml:"price"`
}

// ComboDefinition describes a meal and the slots a customer fills after upgrading.
//
// Slots maps slot names (fries, drinks, sauces) to their option lists.
type ComboDefinition struct {
	Name  string              `json:"name" yaml:"name"`
	Price float64             `json:"price" yaml:"price"`
	Slots map[string][]string `json:"slots" yaml:"slots"`
}

// Menu is a read-only snapshot of the catalog.
type Menu struct {
	Items   []MenuItem        `json:"items" yaml:"items"`
	Combos  []ComboDefinition `json:"combos" yaml:"combos"`
	Upsells []MenuItem        `json:"upsells" yaml:"upsells"`
}
