package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	appconfig "mcbot/internal/infrastructure/config"
)

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway(appconfig.MercadoPago{}); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
}

func TestMercadoPagoGateway_MockApproves(t *testing.T) {
	g, err := NewMercadoPagoGateway(appconfig.MercadoPago{Mock: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.now = func() time.Time { return time.Unix(1700000000, 0) }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"external_reference":"o-1","transaction_amount":10.98}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "1700000000000000000" || status != "approved" {
		t.Fatalf("unexpected id=%s status=%s", id, status)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid provider payload: %v", err)
	}
	if body["external_reference"] != "o-1" || body["transaction_amount"] != 10.98 || body["status_detail"] != "accredited" {
		t.Fatalf("unexpected provider payload %v", body)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected not configured error, got %v", err)
	}
}
