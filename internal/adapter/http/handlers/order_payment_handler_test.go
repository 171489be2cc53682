package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mcbot/internal/adapter/http/handlers/mocks"
	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestOrderPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T, mockMode bool) (*gin.Engine, *mocks.MockIOrderPaymentUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderPaymentUseCase(ctrl)
		h := NewOrderPaymentHandler(uc, mockMode)
		r := gin.New()
		r.POST("/v1/orders/:order_id/payments", h.CreatePayment)
		return r, uc
	}

	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/o-1/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := setup(t, false)
		if w := post(r, "{"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty object", func(t *testing.T) {
		r, uc := setup(t, true)
		uc.EXPECT().PayOrder(gomock.Any(), "o-1", json.RawMessage("{}")).Return(entities.OrderPayment{ID: "pay-1", OrderID: "o-1", Status: entities.PaymentStatusApproved}, nil)

		if w := post(r, "{"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped errors", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{usecase.ErrOrderNotFinalized, http.StatusConflict},
			{usecase.ErrOrderNotFound, http.StatusNotFound},
			{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
			{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
			{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
			{errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			r, uc := setup(t, false)
			uc.EXPECT().PayOrder(gomock.Any(), "o-1", gomock.Any()).Return(entities.OrderPayment{}, tc.err)

			if w := post(r, `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`); w.Code != tc.code {
				t.Fatalf("err %v: expected %d, got %d", tc.err, tc.code, w.Code)
			}
		}
	})

	t.Run("success unwraps mp_payload", func(t *testing.T) {
		r, uc := setup(t, false)
		now := time.Now().UTC()
		uc.EXPECT().PayOrder(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, payload json.RawMessage) (entities.OrderPayment, error) {
			var m map[string]any
			if err := json.Unmarshal(payload, &m); err != nil || m["payment_method_id"] != "pix" {
				t.Fatalf("expected unwrapped payload, got %s", payload)
			}
			return entities.OrderPayment{ID: "pay-1", OrderID: "o-1", Amount: 10.98, Date: now, Status: entities.PaymentStatusApproved}, nil
		})

		w := post(r, `{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["amount"] != 10.98 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderPaymentUseCase(ctrl)
		h := NewOrderPaymentHandler(uc, false)

		r := gin.New()
		r.GET("/v1/orders/:order_id/payments", h.GetPayment)

		uc.EXPECT().Latest(gomock.Any(), "o-1").Return(entities.OrderPayment{}, usecase.ErrOrderPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderPaymentUseCase(ctrl)
		h := NewOrderPaymentHandler(uc, false)

		r := gin.New()
		r.GET("/v1/orders/:order_id/payments", h.GetPayment)

		uc.EXPECT().Latest(gomock.Any(), "o-1").Return(entities.OrderPayment{ID: "pay-2", OrderID: "o-1", Status: entities.PaymentStatusPending}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/o-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-2" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	read := func(body io.ReadCloser) (json.RawMessage, error) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
		c.Request.Body = body
		return readMPPayload(c)
	}

	t.Run("empty body", func(t *testing.T) {
		got, err := read(io.NopCloser(bytes.NewBufferString("  ")))
		if err != nil || string(got) != "{}" {
			t.Fatalf("expected {}, got %s err=%v", got, err)
		}
	})

	t.Run("null envelope", func(t *testing.T) {
		if _, err := read(io.NopCloser(bytes.NewBufferString(`{"mp_payload":null}`))); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("bare payload", func(t *testing.T) {
		got, err := read(io.NopCloser(bytes.NewBufferString(`{"token":"abc"}`)))
		if err != nil || string(got) != `{"token":"abc"}` {
			t.Fatalf("unexpected payload %s err=%v", got, err)
		}
	})

	t.Run("read failure", func(t *testing.T) {
		if _, err := read(failingReadCloser{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
