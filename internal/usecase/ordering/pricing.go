package ordering

import (
	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/interfaces"
)

// PriceResolver maps item names to catalog prices. Unknown names price at 0; rejecting
// them is the validator's job.
type PriceResolver struct {
	catalog interfaces.ICatalog
}

func NewPriceResolver(catalog interfaces.ICatalog) *PriceResolver {
	return &PriceResolver{catalog: catalog}
}

func (p *PriceResolver) Price(name string) float64 {
	it, ok := p.catalog.ItemByName(name)
	if !ok {
		return 0
	}
	return roundMoney(it.Price)
}

func (p *PriceResolver) PriceOf(it entities.Item) float64 {
	return p.Price(it.Name)
}
