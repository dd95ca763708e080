package routes

import (
	"github.com/azimeazdhan1231/trynex-lifestyle-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	server.GET("/cart/:cartKey", controllers.GetCart)
	server.POST("/cart/:cartKey/items", controllers.AddCartItem)
	server.PATCH("/cart/:cartKey/items/:itemId", controllers.UpdateCartItemQuantity)
	server.DELETE("/cart/:cartKey/items/:itemId", controllers.RemoveCartItem)
	server.DELETE("/cart/:cartKey", controllers.ClearCart)
}
