package routes

import (
	"github.com/azimeazdhan1231/trynex-lifestyle-api/controllers"
	"github.com/azimeazdhan1231/trynex-lifestyle-api/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/:id", controllers.GetProduct)
	server.POST("/uploads/customization-images", controllers.UploadCustomizationImages)

	catalog := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		catalog.POST("/product", controllers.CreateProduct)
		catalog.POST("/product-images", controllers.UploadProductImages)
	}
}
