package routes

import (
	"mcbot/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChat     = "/chat"
	PathSessions = "/sessions"
	PathMenus    = "/menus"
)

func addChatRoutes(rg *gin.RouterGroup, chatHandler *handlers.ChatHandler, menuHandler *handlers.MenuHandler) {
	rg.POST(PathChat, chatHandler.Chat)
	rg.GET(PathSessions+"/:session_id", chatHandler.GetSession)
	rg.GET(PathMenus, menuHandler.GetMenu)
}
