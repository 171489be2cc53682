package response

import (
	"time"

	"mcbot/internal/domain/entities"
)

type ItemResponse struct {
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Size  string  `json:"size,omitempty"`
	Price float64 `json:"price"`
}

type OrderResponse struct {
	OrderID   string         `json:"order_id"`
	SessionID string         `json:"session_id"`
	Items     []ItemResponse `json:"items"`
	Total     float64        `json:"total"`
	Finalized bool           `json:"finalized"`
	CreatedAt time.Time      `json:"created_at"`
}

func FromItems(items []entities.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ItemResponse{
			Name:  it.Name,
			Type:  string(it.Category),
			Size:  string(it.Size),
			Price: it.Price,
		})
	}
	return out
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:   o.ID,
		SessionID: o.SessionID,
		Items:     FromItems(o.Items),
		Total:     o.Total,
		Finalized: o.Finalized,
		CreatedAt: o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
