package handlers

import (
	"net/http"

	"mcbot/internal/adapter/http/dto/response"
	"mcbot/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// MenuHandler serves the catalog.
type MenuHandler struct {
	catalog interfaces.ICatalog
}

func NewMenuHandler(catalog interfaces.ICatalog) *MenuHandler {
	return &MenuHandler{catalog: catalog}
}

// GetMenu godoc
// @Summary      Menu grouped by category
// @Tags         menus
// @Produce      json
// @Success      200  {object}  response.MenuResponse
// @Router       /menus [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromMenu(h.catalog.Snapshot()))
}
