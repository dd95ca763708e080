package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Trynex Lifestyle API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account

PRODUCT
- GET "/product" - Browse the catalog
- GET "/product/:id" - Get product by ID
- POST "/product" - Create new product (admin)
- POST "/product-images" - Add product images (admin)

CART
- GET "/cart/:cartKey" - Get the cart
- POST "/cart/:cartKey/items" - Add an item to the cart
- PATCH "/cart/:cartKey/items/:itemId" - Change an item's quantity
- DELETE "/cart/:cartKey/items/:itemId" - Remove an item
- DELETE "/cart/:cartKey" - Clear the cart

ORDER
- POST "/order" - Place an order from the cart
- POST "/custom-order" - Place a single-product custom order
- POST "/uploads/customization-images" - Upload customization artwork
- GET "/track/:trackingId" - Track an order

ADMIN
- GET "/admin/orders" - List orders
- GET "/admin/orders/:orderId" - Get order by ID
- PATCH "/admin/orders/:orderId/status" - Update order status
- GET "/admin/custom-orders" - List custom orders
- PATCH "/admin/custom-orders/:orderId/status" - Update custom order status
- GET "/admin/orders/undelivered-count" - Count undelivered orders`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
