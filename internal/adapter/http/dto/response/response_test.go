package response

import (
	"encoding/json"
	"testing"
	"time"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase"
)

func TestFromChatResult(t *testing.T) {
	t.Run("without order", func(t *testing.T) {
		res := FromChatResult(usecase.ChatResult{SessionID: "s-1", Response: "Hi"})
		raw, _ := json.Marshal(res)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		if _, ok := body["order"]; ok {
			t.Fatalf("expected order to be omitted: %s", raw)
		}
		if body["finalized"] != false || body["response"] != "Hi" {
			t.Fatalf("unexpected body: %s", raw)
		}
	})

	t.Run("with order", func(t *testing.T) {
		now := time.Now().UTC()
		order := &entities.Order{
			ID:        "o-1",
			SessionID: "s-1",
			Items:     []entities.Item{{Name: "Coca-Cola", Category: entities.CategoryDrink, Size: entities.SizeLarge, Price: 1.99}},
			Total:     1.99,
			Finalized: true,
			CreatedAt: now,
		}
		res := FromChatResult(usecase.ChatResult{SessionID: "s-1", Response: "done", Finalized: true, Order: order})
		if res.Order == nil || res.Order.OrderID != "o-1" || !res.Order.CreatedAt.Equal(now) {
			t.Fatalf("unexpected order: %+v", res.Order)
		}
		if got := res.Order.Items[0]; got.Type != "drink" || got.Size != "large" || got.Price != 1.99 {
			t.Fatalf("unexpected item: %+v", got)
		}
	})
}

func TestFromSessionView(t *testing.T) {
	res := FromSessionView(usecase.SessionView{
		ID:    "s-1",
		Items: []entities.Item{{Name: "Big Mac Meal", Category: entities.CategoryCombo, Price: 8.99}},
		Total: 8.99,
		PendingSlot: &entities.PendingSlot{
			Slot:      "drinks",
			Options:   []string{"Coca-Cola", "Sprite"},
			Remaining: []string{"sauces"},
		},
	})
	if res.History == nil || res.UpsellFlags == nil {
		t.Fatalf("expected empty history and flags, got %+v", res)
	}
	if res.PendingSlot == nil || res.PendingSlot.Slot != "drinks" || len(res.PendingSlot.Remaining) != 1 {
		t.Fatalf("unexpected pending slot: %+v", res.PendingSlot)
	}
}

func TestFromOrderPayment(t *testing.T) {
	now := time.Now().UTC()
	res := FromOrderPayment(entities.OrderPayment{
		ID:                 "pay-1",
		OrderID:            "o-1",
		Amount:             10.98,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: json.RawMessage(`{"id":123}`),
		ProviderPayload:    map[string]interface{}{"a": "b"},
	})
	if res.PaymentID != "pay-1" || res.OrderID != "o-1" || res.Status != "approved" || res.Amount != 10.98 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.MPPayloadRaw != `{"id":123}` || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}

func TestFromMenu(t *testing.T) {
	res := FromMenu(entities.Menu{
		Items: []entities.MenuItem{
			{Name: "Big Mac", Category: "burgers", Price: 5.99},
			{Name: "Sprite", Category: "drinks", Price: 1.49},
			{Name: "Coca-Cola", Category: "drinks", Price: 1.49},
		},
		Combos:  []entities.ComboDefinition{{Name: "Big Mac Meal", Price: 8.99, Slots: map[string][]string{"drinks": {"Sprite"}}}},
		Upsells: []entities.MenuItem{{Name: "Apple Pie", Category: "desserts", Price: 1.29}},
	})
	if len(res.Categories["drinks"]) != 2 || res.Categories["drinks"][1].Name != "Coca-Cola" {
		t.Fatalf("unexpected drinks: %+v", res.Categories["drinks"])
	}
	if len(res.Combos) != 1 || res.Combos[0].Slots["drinks"][0] != "Sprite" {
		t.Fatalf("unexpected combos: %+v", res.Combos)
	}
	if len(res.Upsells) != 1 {
		t.Fatalf("unexpected upsells: %+v", res.Upsells)
	}
}
