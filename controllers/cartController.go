package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/azimeazdhan1231/trynex-lifestyle-api/initializers"
	"github.com/azimeazdhan1231/trynex-lifestyle-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgCartNotFound         = "Cart not found"
	msgCartItemNotFound     = "Cart item not found"
	msgFailedToFetchCart    = "Failed to fetch cart"
	msgFailedToSaveCartItem = "Failed to save cart item"
	msgInvalidQuantity      = "Quantity must be at least 1"
)

type addCartItemInput struct {
	ProductId     uint                  `json:"productId" binding:"required"`
	Quantity      int                   `json:"quantity" binding:"required"`
	Customization *models.Customization `json:"customization"`
}

// getOrCreateCart loads the cart owned by cartKey, creating an empty one on
// first mutation.
func getOrCreateCart(cartKey string) (models.Cart, error) {
	var cart models.Cart
	err := initializers.DB.Where("cart_key = ?", cartKey).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{CartKey: cartKey}
		err = initializers.DB.Create(&cart).Error
	}
	return cart, err
}

// AddCartItem appends a line or, when a line with the same product and
// customization already exists, merges into it by summing quantities.
func AddCartItem(ctx *gin.Context) {
	cartKey := ctx.Param("cartKey")

	var input addCartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if input.Quantity <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidQuantity)
		return
	}

	// The catalog is authoritative for name, price and image; the client
	// only picks the product and the customization.
	var product models.Product
	if err := initializers.DB.First(&product, input.ProductId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	cart, err := getOrCreateCart(cartKey)
	if err != nil {
		log.Println("Cart error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		return
	}

	identityKey := models.IdentityKey(input.ProductId, input.Customization)

	var existingItem models.CartItem
	err = initializers.DB.
		Where("cart_id = ? AND identity_key = ?", cart.ID, identityKey).
		First(&existingItem).Error

	if err == nil {
		existingItem.Quantity += input.Quantity
		if err := initializers.DB.Save(&existingItem).Error; err != nil {
			log.Println("Update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCartItem)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Cart item quantity updated",
			"id":      existingItem.ID,
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		return
	}

	cartItem := models.CartItem{
		CartID:        cart.ID,
		ProductId:     product.ID,
		ProductName:   product.Name,
		UnitPrice:     product.Price,
		Quantity:      input.Quantity,
		ImageUrl:      product.ImageUrl,
		Customization: input.Customization,
		IdentityKey:   identityKey,
	}
	if err := initializers.DB.Create(&cartItem).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCartItem)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": product.Name + " added to cart",
		"id":      cartItem.ID,
	})
}

// GetCart returns the persisted cart for cartKey with a total recomputed
// from its lines. An unknown key reads as an empty cart.
func GetCart(ctx *gin.Context) {
	cartKey := ctx.Param("cartKey")

	var cart models.Cart
	result := initializers.DB.
		Where("cart_key = ?", cartKey).
		Preload("Items").
		First(&cart)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendJSONResponse(ctx, http.StatusOK, gin.H{
				"cartKey": cartKey,
				"items":   []models.CartItem{},
				"total":   "0",
			})
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cartKey": cart.CartKey,
		"items":   cart.Items,
		"total":   cart.Total().String(),
	})
}

// UpdateCartItemQuantity replaces a line's quantity. A quantity below one
// removes the line instead; no line may persist with quantity <= 0.
func UpdateCartItemQuantity(ctx *gin.Context) {
	cartKey := ctx.Param("cartKey")
	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse item id")
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	item, ok := findCartItem(ctx, cartKey, itemId)
	if !ok {
		return
	}

	if input.Quantity < 1 {
		if err := initializers.DB.Delete(&item).Error; err != nil {
			log.Println("Delete error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCartItem)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item removed"})
		return
	}

	item.Quantity = input.Quantity
	if err := initializers.DB.Save(&item).Error; err != nil {
		log.Println("Update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCartItem)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item quantity updated"})
}

// RemoveCartItem deletes a single line from the cart.
func RemoveCartItem(ctx *gin.Context) {
	cartKey := ctx.Param("cartKey")
	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse item id")
		return
	}

	item, ok := findCartItem(ctx, cartKey, itemId)
	if !ok {
		return
	}

	if err := initializers.DB.Delete(&item).Error; err != nil {
		log.Println("Delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCartItem)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item removed"})
}

// ClearCart removes every line owned by cartKey.
func ClearCart(ctx *gin.Context) {
	cartKey := ctx.Param("cartKey")

	var cart models.Cart
	if err := initializers.DB.Where("cart_key = ?", cartKey).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared"})
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		}
		return
	}

	if err := initializers.DB.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		log.Println("Delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCartItem)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared"})
}

// findCartItem loads a cart line and verifies it belongs to cartKey,
// responding with the appropriate error when it does not.
func findCartItem(ctx *gin.Context, cartKey string, itemId int) (models.CartItem, bool) {
	var cart models.Cart
	if err := initializers.DB.Where("cart_key = ?", cartKey).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCartNotFound)
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		}
		return models.CartItem{}, false
	}

	var item models.CartItem
	if err := initializers.DB.Where("id = ? AND cart_id = ?", itemId, cart.ID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		}
		return models.CartItem{}, false
	}

	return item, true
}
