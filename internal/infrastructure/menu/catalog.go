package menu

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var defaultMenu []byte

const categoryCombos = "combos"

var ErrEmptyMenu = errors.New("menu has no items")

// Catalog is the YAML-backed menu lookup. It is immutable after construction.
type Catalog struct {
	menu       entities.Menu
	byName     map[string]entities.MenuItem
	byCategory map[string][]entities.MenuItem
	slots      map[string]map[string][]string
}

var _ interfaces.ICatalog = (*Catalog)(nil)

// Load reads the menu from path, or the embedded default menu when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		log.Printf("[menu][catalog] loading embedded menu")
		return Parse(defaultMenu)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu %s: %w", path, err)
	}
	log.Printf("[menu][catalog] loading menu path=%s bytes=%d", path, len(raw))
	return Parse(raw)
}

// Default returns the embedded menu. It panics on a malformed embed, which only a broken build can cause.
func Default() *Catalog {
	c, err := Parse(defaultMenu)
	if err != nil {
		panic(err)
	}
	return c
}

func Parse(raw []byte) (*Catalog, error) {
	var m entities.Menu
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	if len(m.Items) == 0 && len(m.Combos) == 0 {
		return nil, ErrEmptyMenu
	}

	c := &Catalog{
		menu:       m,
		byName:     make(map[string]entities.MenuItem),
		byCategory: make(map[string][]entities.MenuItem),
		slots:      make(map[string]map[string][]string),
	}

	add := func(it entities.MenuItem) {
		c.byName[it.Name] = it
		c.byCategory[it.Category] = append(c.byCategory[it.Category], it)
	}
	for _, it := range m.Items {
		add(it)
	}
	for _, combo := range m.Combos {
		add(entities.MenuItem{Name: combo.Name, Category: categoryCombos, Price: combo.Price})
		c.slots[combo.Name] = combo.Slots
	}
	for _, it := range m.Upsells {
		add(it)
	}

	log.Printf("[menu][catalog] loaded items=%d combos=%d upsells=%d", len(m.Items), len(m.Combos), len(m.Upsells))
	return c, nil
}

func (c *Catalog) ItemByName(name string) (entities.MenuItem, bool) {
	it, ok := c.byName[name]
	return it, ok
}

func (c *Catalog) ItemsByCategory(category string) []entities.MenuItem {
	items := c.byCategory[category]
	out := make([]entities.MenuItem, len(items))
	copy(out, items)
	return out
}

func (c *Catalog) ComboSlotDefinition(comboName string) (map[string][]string, bool) {
	slots, ok := c.slots[comboName]
	if !ok {
		return nil, false
	}
	out := make(map[string][]string, len(slots))
	for k, v := range slots {
		out[k] = append([]string(nil), v...)
	}
	return out, true
}

func (c *Catalog) Snapshot() entities.Menu {
	return c.menu
}
