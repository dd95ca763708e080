package routes

import (
	"github.com/azimeazdhan1231/trynex-lifestyle-api/controllers"
	"github.com/azimeazdhan1231/trynex-lifestyle-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/order", controllers.CreateOrder)
	server.POST("/custom-order", controllers.CreateCustomOrder)
	server.GET("/track/:trackingId", controllers.TrackOrder)

	// Status transitions and listings go through the privileged channel only.
	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/orders", controllers.GetOrders)
		admin.GET("/orders/undelivered-count", controllers.GetUndeliveredOrders)
		admin.GET("/orders/:orderId", controllers.GetOrderById)
		admin.PATCH("/orders/:orderId/status", controllers.UpdateOrderStatus)
		admin.GET("/custom-orders", controllers.GetCustomOrders)
		admin.PATCH("/custom-orders/:orderId/status", controllers.UpdateCustomOrderStatus)
	}
}
