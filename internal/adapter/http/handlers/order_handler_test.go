package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mcbot/internal/adapter/http/handlers/mocks"
	"mcbot/internal/domain/entities"
	"mcbot/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIOrderUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)
		r := gin.New()
		r.GET("/v1/orders", h.ListOrders)
		r.GET("/v1/orders/:order_id", h.GetOrder)
		return r, uc
	}

	get := func(r *gin.Engine, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("list filters by session", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().List(gomock.Any(), "s-1").Return([]entities.Order{{ID: "o-1", SessionID: "s-1"}}, nil)

		w := get(r, "/v1/orders?session_id=s-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["order_id"] != "o-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("list empty is an empty array", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().List(gomock.Any(), "").Return(nil, nil)

		w := get(r, "/v1/orders")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("list error", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("dynamo down"))

		if w := get(r, "/v1/orders"); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().GetByID(gomock.Any(), "o-9").Return(entities.Order{}, usecase.ErrOrderNotFound)

		if w := get(r, "/v1/orders/o-9"); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get success", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Total: 8.99, Finalized: true}, nil)

		w := get(r, "/v1/orders/o-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total"] != 8.99 || body["finalized"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
