package ordering

import (
	"fmt"
	"strings"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/interfaces"
)

// nameAliases maps folded spellings the NLU commonly emits to catalog names.
var nameAliases = map[string]string{
	"coke":        "Coca-Cola",
	"coca cola":   "Coca-Cola",
	"sprite zero": "Sprite",
	"fries":       "French Fries",
	"big drink":   "Coca-Cola",
}

// categoryAliases maps the parser's item types to catalog categories.
var categoryAliases = map[string]string{
	"burger":  "burgers",
	"drink":   "drinks",
	"combo":   "combos",
	"fries":   "fries",
	"dessert": "desserts",
	"sauce":   "sauces",
}

var catalogToItem = map[string]entities.Category{
	"burgers":  entities.CategoryBurger,
	"drinks":   entities.CategoryDrink,
	"combos":   entities.CategoryCombo,
	"fries":    entities.CategoryFries,
	"desserts": entities.CategoryDessert,
	"sauces":   entities.CategorySauce,
}

var sizedCategories = map[string]bool{
	"drinks": true,
	"fries":  true,
}

// Validator checks parsed items against the catalog and prices the survivors.
type Validator struct {
	catalog interfaces.ICatalog
	pricing *PriceResolver
	folded  map[string]string
}

func NewValidator(catalog interfaces.ICatalog, pricing *PriceResolver) *Validator {
	folded := make(map[string]string)
	menu := catalog.Snapshot()
	for _, it := range menu.Items {
		folded[foldKey(it.Name)] = it.Name
	}
	for _, c := range menu.Combos {
		folded[foldKey(c.Name)] = c.Name
	}
	for _, it := range menu.Upsells {
		folded[foldKey(it.Name)] = it.Name
	}
	return &Validator{catalog: catalog, pricing: pricing, folded: folded}
}

func (v *Validator) Validate(parsed entities.ParsedOrder) entities.ValidatedOrder {
	items := make([]entities.Item, 0, len(parsed.Items))
	errs := make([]string, 0)

	for _, candidate := range parsed.Items {
		name := v.canonicalName(candidate.Name)
		category := normalizeCategory(string(candidate.Category))

		entry, ok := v.catalog.ItemByName(name)
		if !ok {
			errs = append(errs, fmt.Sprintf("Unknown item: %s", name))
			continue
		}

		if entry.Category != category {
			errs = append(errs, fmt.Sprintf("Incorrect type for item '%s': expected '%s', got '%s'", name, entry.Category, category))
		}

		size := entities.Size(strings.ToLower(strings.TrimSpace(string(candidate.Size))))
		if sizedCategories[entry.Category] {
			switch size {
			case "":
				errs = append(errs, fmt.Sprintf("Missing size for %s '%s'", entry.Category, name))
			case entities.SizeSmall, entities.SizeMedium, entities.SizeLarge:
			default:
				errs = append(errs, fmt.Sprintf("Invalid size '%s' for %s '%s'", size, entry.Category, name))
			}
		}

		items = append(items, entities.Item{
			Name:     name,
			Category: itemCategory(entry.Category, candidate.Category),
			Size:     size,
			Price:    v.pricing.Price(name),
		})
	}

	return entities.ValidatedOrder{
		IsValid: len(errs) == 0,
		Errors:  errs,
		Items:   items,
		Intents: parsed.Intents,
	}
}

func (v *Validator) canonicalName(raw string) string {
	key := foldKey(raw)
	if alias, ok := nameAliases[key]; ok {
		return alias
	}
	if name, ok := v.folded[key]; ok {
		return name
	}
	return strings.TrimSpace(raw)
}

func normalizeCategory(raw string) string {
	key := foldKey(raw)
	if c, ok := categoryAliases[key]; ok {
		return c
	}
	return key
}

// itemCategory trusts the catalog; the parser's category is only used for catalog
// categories outside the cart vocabulary.
func itemCategory(catalogCategory string, parsed entities.Category) entities.Category {
	if c, ok := catalogToItem[catalogCategory]; ok {
		return c
	}
	return parsed
}
