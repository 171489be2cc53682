package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase/interfaces"
)

var (
	ErrOrderPaymentNotFound           = errors.New("order payment not found")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrOrderNotFinalized              = errors.New("order not finalized")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// sandboxPayerEmail is the Mercado Pago test buyer used with TEST- tokens when nothing else is configured.
const sandboxPayerEmail = "test_user_br@testuser.com"

// PaymentSettings controls how checkout payloads are completed before reaching the gateway.
type PaymentSettings struct {
	// Mock accepts any payload and lets the gateway approve it locally.
	Mock bool
	// Sandbox is true for TEST- access tokens.
	Sandbox        bool
	TestPayerEmail string
}

// IOrderPaymentUseCase pays finalized orders.
//
// The charged amount always comes from the stored order, never from the client payload.
type IOrderPaymentUseCase interface {
	PayOrder(ctx context.Context, orderID string, payload json.RawMessage) (entities.OrderPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
	Latest(ctx context.Context, orderID string) (entities.OrderPayment, error)
}

type OrderPaymentUseCase struct {
	repo     interfaces.IOrderPaymentRepository
	orders   interfaces.IOrderRepository
	gateway  interfaces.IPaymentGateway
	settings PaymentSettings
	now      func() time.Time
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(repo interfaces.IOrderPaymentRepository, orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, settings PaymentSettings) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{repo: repo, orders: orders, gateway: gateway, settings: settings, now: time.Now}
}

func (u *OrderPaymentUseCase) PayOrder(ctx context.Context, orderID string, payload json.RawMessage) (entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	log.Printf("[payment][usecase] pay start order_id=%q payload_len=%d mock=%t", orderID, len(payload), u.settings.Mock)
	if orderID == "" {
		return entities.OrderPayment{}, ErrInvalidOrderID
	}

	req, err := u.decodePayload(payload)
	if err != nil {
		log.Printf("[payment][usecase] invalid payload order_id=%s err=%v", orderID, err)
		return entities.OrderPayment{}, err
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured order_id=%s", orderID)
		return entities.OrderPayment{}, ErrPaymentGatewayNotConfigured
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.OrderPayment{}, err
	}
	if order.ID == "" {
		return entities.OrderPayment{}, ErrOrderNotFound
	}
	if !order.Finalized {
		return entities.OrderPayment{}, ErrOrderNotFinalized
	}

	if !u.settings.Mock {
		if !hasNonEmptyString(req, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id order_id=%s", orderID)
			return entities.OrderPayment{}, ErrInvalidPaymentPayload
		}
		u.ensurePayer(req)
		if !hasPayer(req) {
			log.Printf("[payment][usecase] missing payer order_id=%s", orderID)
			return entities.OrderPayment{}, ErrInvalidPaymentPayload
		}
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = order.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = describeOrder(order)
	}
	req["transaction_amount"] = order.Total

	body, err := json.Marshal(req)
	if err != nil {
		return entities.OrderPayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed order_id=%s err=%v", orderID, err)
		return entities.OrderPayment{}, classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] gateway success order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed order_id=%s err=%v", orderID, err)
	}

	created, err := u.repo.Create(ctx, entities.OrderPayment{
		ID:                 providerID,
		OrderID:            order.ID,
		Amount:             order.Total,
		Date:               u.now().UTC(),
		Status:             entities.PaymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	})
	if err != nil {
		log.Printf("[payment][usecase] repository create failed order_id=%s payment_id=%s err=%v", orderID, providerID, err)
		return entities.OrderPayment{}, err
	}
	log.Printf("[payment][usecase] pay success order_id=%s payment_id=%s status=%s", orderID, created.ID, created.Status)
	return created, nil
}

// decodePayload accepts an empty body as {}; mock mode also tolerates malformed JSON.
func (u *OrderPaymentUseCase) decodePayload(payload json.RawMessage) (map[string]any, error) {
	req := map[string]any{}
	if len(strings.TrimSpace(string(payload))) == 0 {
		if u.settings.Mock {
			return req, nil
		}
		return nil, ErrInvalidPaymentPayload
	}
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		if u.settings.Mock {
			return map[string]any{}, nil
		}
		return nil, ErrInvalidPaymentPayload
	}
	return req, nil
}

func (u *OrderPaymentUseCase) ensurePayer(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case u.settings.TestPayerEmail != "":
		payer["email"] = u.settings.TestPayerEmail
	case u.settings.Sandbox:
		payer["email"] = sandboxPayerEmail
	}
}

func (u *OrderPaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

// Latest returns the most recent payment attempt for an order.
func (u *OrderPaymentUseCase) Latest(ctx context.Context, orderID string) (entities.OrderPayment, error) {
	payments, err := u.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if len(payments) == 0 {
		return entities.OrderPayment{}, ErrOrderPaymentNotFound
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date)
	})
	return payments[0], nil
}

func describeOrder(o entities.Order) string {
	names := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		names = append(names, it.Name)
	}
	return fmt.Sprintf("Order %s: %s", o.ID, strings.Join(names, ", "))
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// classifyGatewayError maps Mercado Pago error bodies onto the usecase sentinels.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
