package response

import "mcbot/internal/domain/entities"

type MenuItemResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ComboResponse struct {
	Name  string              `json:"name"`
	Price float64             `json:"price"`
	Slots map[string][]string `json:"slots"`
}

// MenuResponse groups the catalog by category (burgers, drinks, fries, desserts, sauces).
type MenuResponse struct {
	Categories map[string][]MenuItemResponse `json:"categories"`
	Combos     []ComboResponse               `json:"combos"`
	Upsells    []MenuItemResponse            `json:"upsells"`
}

func FromMenu(m entities.Menu) MenuResponse {
	res := MenuResponse{
		Categories: map[string][]MenuItemResponse{},
		Combos:     make([]ComboResponse, 0, len(m.Combos)),
		Upsells:    make([]MenuItemResponse, 0, len(m.Upsells)),
	}
	for _, it := range m.Items {
		res.Categories[it.Category] = append(res.Categories[it.Category], MenuItemResponse{Name: it.Name, Price: it.Price})
	}
	for _, c := range m.Combos {
		res.Combos = append(res.Combos, ComboResponse{Name: c.Name, Price: c.Price, Slots: c.Slots})
	}
	for _, u := range m.Upsells {
		res.Upsells = append(res.Upsells, MenuItemResponse{Name: u.Name, Price: u.Price})
	}
	return res
}
