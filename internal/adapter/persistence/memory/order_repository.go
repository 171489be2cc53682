package memory

import (
	"context"
	"errors"
	"sync"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/interfaces"
)

var ErrDuplicateOrderID = errors.New("order id already exists")

// OrderRepository keeps finalized orders in process memory. Used by the CLI and local runs
// without DynamoDB.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []entities.Order
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.orders {
		if existing.ID == o.ID {
			return entities.Order{}, ErrDuplicateOrderID
		}
	}
	r.orders = append(r.orders, cloneOrder(o))
	return o, nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return entities.Order{}, nil
}

func (r *OrderRepository) List(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (r *OrderRepository) ListBySessionID(_ context.Context, sessionID string) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []entities.Order{}
	for _, o := range r.orders {
		if o.SessionID == sessionID {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func cloneOrder(o entities.Order) entities.Order {
	o.Items = append([]entities.Item(nil), o.Items...)
	return o
}
