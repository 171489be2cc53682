package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrInvalidOrderID = errors.New("invalid order_id")
)

// IOrderUseCase exposes the history of finalized orders.
type IOrderUseCase interface {
	List(ctx context.Context, sessionID string) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// List returns finalized orders, newest first. An empty sessionID lists every order.
func (u *OrderUseCase) List(ctx context.Context, sessionID string) ([]entities.Order, error) {
	sessionID = strings.TrimSpace(sessionID)

	var (
		orders []entities.Order
		err    error
	)
	if sessionID == "" {
		orders, err = u.repo.List(ctx)
	} else {
		orders, err = u.repo.ListBySessionID(ctx, sessionID)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
