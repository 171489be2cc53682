package response

import (
	"time"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase"
)

type PendingSlotResponse struct {
	Slot      string   `json:"slot"`
	Options   []string `json:"options"`
	Remaining []string `json:"remaining"`
}

type SessionResponse struct {
	SessionID   string               `json:"session_id"`
	History     []entities.Turn      `json:"history"`
	Items       []ItemResponse       `json:"items"`
	Total       float64              `json:"total"`
	UpsellFlags map[string]bool      `json:"upsell_flags"`
	PendingSlot *PendingSlotResponse `json:"pending_slot,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

func FromSessionView(v usecase.SessionView) SessionResponse {
	res := SessionResponse{
		SessionID:   v.ID,
		History:     v.History,
		Items:       FromItems(v.Items),
		Total:       v.Total,
		UpsellFlags: map[string]bool(v.UpsellFlags),
		CreatedAt:   v.CreatedAt,
	}
	if res.History == nil {
		res.History = []entities.Turn{}
	}
	if res.UpsellFlags == nil {
		res.UpsellFlags = map[string]bool{}
	}
	if v.PendingSlot != nil {
		res.PendingSlot = &PendingSlotResponse{
			Slot:      v.PendingSlot.Slot,
			Options:   v.PendingSlot.Options,
			Remaining: v.PendingSlot.Remaining,
		}
	}
	return res
}
