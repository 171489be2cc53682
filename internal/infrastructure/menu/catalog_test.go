package menu

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	t.Run("items combos and upsells resolve by name", func(t *testing.T) {
		for name, category := range map[string]string{
			"Big Mac":      "burgers",
			"Big Mac Meal": "combos",
			"Ketchup":      "sauces",
			"French Fries": "fries",
		} {
			it, ok := c.ItemByName(name)
			if !ok {
				t.Fatalf("expected %q in catalog", name)
			}
			if it.Category != category {
				t.Fatalf("expected %q category %q, got %q", name, category, it.Category)
			}
		}
		if _, ok := c.ItemByName("Fris"); ok {
			t.Fatalf("unexpected item Fris")
		}
	})

	t.Run("combo slots", func(t *testing.T) {
		slots, ok := c.ComboSlotDefinition("Big Mac Meal")
		if !ok {
			t.Fatalf("expected Big Mac Meal slots")
		}
		if len(slots["drinks"]) == 0 || len(slots["sauces"]) == 0 {
			t.Fatalf("unexpected slots: %+v", slots)
		}
		slots["drinks"][0] = "mutated"
		again, _ := c.ComboSlotDefinition("Big Mac Meal")
		if again["drinks"][0] == "mutated" {
			t.Fatalf("slot definitions must be copied")
		}

		cheese, ok := c.ComboSlotDefinition("Cheeseburger Meal")
		if !ok {
			t.Fatalf("expected Cheeseburger Meal slots")
		}
		if _, ok := cheese["sauces"]; ok {
			t.Fatalf("Cheeseburger Meal should not define sauces")
		}
	})

	t.Run("items by category", func(t *testing.T) {
		desserts := c.ItemsByCategory("desserts")
		if len(desserts) != 6 {
			t.Fatalf("expected 6 desserts, got %d", len(desserts))
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("embedded when path empty", func(t *testing.T) {
		c, err := Load("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := c.ItemByName("Big Mac"); !ok {
			t.Fatalf("expected embedded menu")
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "menu.yaml")
		body := "items:\n  - { name: Taco, category: burgers, price: 2.5 }\n"
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		c, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		it, ok := c.ItemByName("Taco")
		if !ok || it.Price != 2.5 {
			t.Fatalf("unexpected item: %+v ok=%v", it, ok)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty menu", func(t *testing.T) {
		if _, err := Parse([]byte("items: []\n")); !errors.Is(err, ErrEmptyMenu) {
			t.Fatalf("expected ErrEmptyMenu, got %v", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		if _, err := Parse([]byte("items: [")); err == nil {
			t.Fatalf("expected decode error")
		}
	})
}
