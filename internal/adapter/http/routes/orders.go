package routes

import (
	"mcbot/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, paymentHandler *handlers.OrderPaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.POST("/:order_id/payments", paymentHandler.CreatePayment)
		orders.GET("/:order_id/payments", paymentHandler.GetPayment)
	}
}
