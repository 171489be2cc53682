package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"mcbot/internal/domain/entities"
	mock_interfaces "mcbot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var finalizedOrder = entities.Order{
	ID:        "o-1",
	SessionID: "s-1",
	Items:     []entities.Item{{Name: "Big Mac Meal", Category: entities.CategoryCombo, Price: 8.99}},
	Total:     8.99,
	Finalized: true,
}

func TestOrderPaymentUseCase_PayOrder_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewOrderPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.PayOrder(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewOrderPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.PayOrder(context.Background(), "o-1", nil)
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewOrderPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.PayOrder(context.Background(), "o-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewOrderPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.PayOrder(context.Background(), "o-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(nil, orders, gateway, PaymentSettings{})

		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{}, nil)

		_, err := uc.PayOrder(context.Background(), "o-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(nil, orders, gateway, PaymentSettings{})

		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(finalizedOrder, nil)

		_, err := uc.PayOrder(context.Background(), "o-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("missing payer outside sandbox", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(nil, orders, gateway, PaymentSettings{})

		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(finalizedOrder, nil)

		_, err := uc.PayOrder(context.Background(), "o-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})
}

func TestOrderPaymentUseCase_PayOrder(t *testing.T) {
	t.Run("amount comes from the stored order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(repo, orders, gateway, PaymentSettings{Sandbox: true})
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(finalizedOrder, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("gateway received invalid json: %v", err)
			}
			if req["transaction_amount"] != 8.99 {
				t.Fatalf("expected order total, got %v", req["transaction_amount"])
			}
			if req["external_reference"] != "o-1" {
				t.Fatalf("expected external_reference o-1, got %v", req["external_reference"])
			}
			payer := req["payer"].(map[string]any)
			if payer["email"] != sandboxPayerEmail {
				t.Fatalf("expected sandbox payer, got %v", payer)
			}
			return "123", "approved", json.RawMessage(`{"id":123,"status":"approved"}`), nil
		})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
			if p.ID != "123" || p.OrderID != "o-1" || p.Amount != 8.99 || !p.Date.Equal(now) {
				t.Fatalf("unexpected payment %+v", p)
			}
			if p.Status != entities.PaymentStatusApproved || p.ProviderPayload["status"] != "approved" {
				t.Fatalf("unexpected status %s payload=%v", p.Status, p.ProviderPayload)
			}
			return p, nil
		})

		got, err := uc.PayOrder(context.Background(), "o-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":0.01}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "123" {
			t.Fatalf("expected payment 123, got %+v", got)
		}
	})

	t.Run("mock mode tolerates an empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(repo, orders, gateway, PaymentSettings{Mock: true})

		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(finalizedOrder, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("1", "approved", json.RawMessage(`{}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
			return p, nil
		})

		if _, err := uc.PayOrder(context.Background(), "o-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("order not finalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(nil, orders, gateway, PaymentSettings{Mock: true})

		open := finalizedOrder
		open.Finalized = false
		orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(open, nil)

		if _, err := uc.PayOrder(context.Background(), "o-1", nil); !errors.Is(err, ErrOrderNotFinalized) {
			t.Fatalf("expected ErrOrderNotFinalized, got %v", err)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want error
		}{
			{"unauthorized", errors.New(`{"error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized},
			{"bad request", errors.New(`{"error":"bad_request","status":400}`), ErrPaymentGatewayBadRequest},
			{"invalid users", errors.New(`{"message":"Invalid users involved","code":2034}`), ErrPaymentGatewayInvalidUsers},
			{"customer not found", errors.New(`{"message":"Customer not found"}`), ErrPaymentGatewayCustomerNotFound},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				orders := mock_interfaces.NewMockIOrderRepository(ctrl)
				gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
				uc := NewOrderPaymentUseCase(nil, orders, gateway, PaymentSettings{Mock: true})

				orders.EXPECT().GetByID(gomock.Any(), "o-1").Return(finalizedOrder, nil)
				gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

				if _, err := uc.PayOrder(context.Background(), "o-1", nil); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})
}

func TestOrderPaymentUseCase_Latest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
	uc := NewOrderPaymentUseCase(repo, nil, nil, PaymentSettings{})

	older := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	repo.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.OrderPayment{{ID: "a", Date: older}, {ID: "b", Date: newer}}, nil)
	repo.EXPECT().ListByOrderID(gomock.Any(), "o-2").Return(nil, nil)

	got, err := uc.Latest(context.Background(), "o-1")
	if err != nil || got.ID != "b" {
		t.Fatalf("expected latest payment b, got %+v err=%v", got, err)
	}
	if _, err := uc.Latest(context.Background(), "o-2"); !errors.Is(err, ErrOrderPaymentNotFound) {
		t.Fatalf("expected ErrOrderPaymentNotFound, got %v", err)
	}
}
