package routes

import (
	"rocket_help/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathOrders = "/orders"

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler, requireSession gin.HandlerFunc) {
	orders := rg.Group(PathOrders, requireSession)
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.PATCH("/:id/close", h.CloseOrder)
	}
}
