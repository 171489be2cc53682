package interfaces

import (
	"context"

	"mcbot/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_interface_mock.go -package=mock_interfaces

// IOrderRepository persists finalized orders.
//
// GetByID returns a zero Order (empty ID) when nothing is stored under id.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]entities.Order, error)
}
