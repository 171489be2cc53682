package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mcbot/internal/adapter/http/handlers"
	"mcbot/internal/adapter/persistence/memory"
	"mcbot/internal/infrastructure/config"
	"mcbot/internal/infrastructure/menu"
	"mcbot/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, origins []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	orders := memory.NewOrderRepository()
	h := Handlers{
		Chat:    handlers.NewChatHandler(nil),
		Orders:  handlers.NewOrderHandler(usecase.NewOrderUseCase(orders)),
		Payment: handlers.NewOrderPaymentHandler(nil, true),
		Menu:    handlers.NewMenuHandler(menu.Default()),
	}
	return NewRouter(config.Config{CORSAllowedOrigins: origins}, h)
}

func TestNewRouter(t *testing.T) {
	r := newTestRouter(t, []string{"*"})

	cases := []struct {
		path string
		code int
	}{
		{"/v1/ping", http.StatusOK},
		{"/v1/menus", http.StatusOK},
		{"/v1/orders", http.StatusOK},
		{"/v1/orders/missing", http.StatusNotFound},
		{"/v1/unknown", http.StatusNotFound},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.code {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.code, w.Code)
		}
	}
}

func TestNewRouter_CORS(t *testing.T) {
	t.Run("allow all", func(t *testing.T) {
		r := newTestRouter(t, []string{"*"})
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("expected wildcard origin, got %q", got)
		}
	})

	t.Run("restricted origins", func(t *testing.T) {
		r := newTestRouter(t, []string{"http://localhost:3000"})
		req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
		req.Header.Set("Origin", "http://evil.test")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403 for unknown origin, got %d", w.Code)
		}
	})
}
