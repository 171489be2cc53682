package interfaces

import "mcbot/internal/domain/entities"

//go:generate mockgen -source=catalog_interface.go -destination=mocks/catalog_interface_mock.go -package=mock_interfaces

// ICatalog is the read-only menu lookup.
//
// Implementations are immutable for the process lifetime and safe for concurrent use.
type ICatalog interface {
	// ItemByName resolves items, combos and upsell items by exact name.
	ItemByName(name string) (entities.MenuItem, bool)
	ItemsByCategory(category string) []entities.MenuItem
	ComboSlotDefinition(comboName string) (map[string][]string, bool)
	Snapshot() entities.Menu
}
