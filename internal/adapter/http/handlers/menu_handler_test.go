package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mcbot/internal/domain/entities"
	mock_interfaces "mcbot/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMenuHandler_GetMenu(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	catalog := mock_interfaces.NewMockICatalog(ctrl)
	h := NewMenuHandler(catalog)

	r := gin.New()
	r.GET("/v1/menus", h.GetMenu)

	catalog.EXPECT().Snapshot().Return(entities.Menu{
		Items: []entities.MenuItem{
			{Name: "Big Mac", Category: "burgers", Price: 5.99},
			{Name: "Coca-Cola", Category: "drinks", Price: 1.49},
		},
		Combos: []entities.ComboDefinition{{Name: "Big Mac Meal", Price: 8.99, Slots: map[string][]string{"fries": {"Medium Fries"}}}},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/menus", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Categories map[string][]struct {
			Name string `json:"name"`
		} `json:"categories"`
		Combos []struct {
			Name string `json:"name"`
		} `json:"combos"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body.Categories["burgers"]) != 1 || body.Categories["drinks"][0].Name != "Coca-Cola" {
		t.Fatalf("unexpected categories: %s", w.Body.String())
	}
	if len(body.Combos) != 1 || body.Combos[0].Name != "Big Mac Meal" {
		t.Fatalf("unexpected combos: %s", w.Body.String())
	}
}
