package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/azimeazdhan1231/trynex-lifestyle-api/initializers"
	"github.com/azimeazdhan1231/trynex-lifestyle-api/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type createCustomOrderInput struct {
	ProductId                 uint            `json:"productId"`
	Quantity                  int             `json:"quantity"`
	CustomerName              string          `json:"customerName"`
	Phone                     string          `json:"phone"`
	Email                     string          `json:"email"`
	District                  string          `json:"district"`
	Thana                     string          `json:"thana"`
	Address                   string          `json:"address"`
	CustomizationInstructions string          `json:"customizationInstructions"`
	CustomizationImages       []string        `json:"customizationImages"`
	CustomizationCost         decimal.Decimal `json:"customizationCost"`
	PaymentMethod             string          `json:"paymentMethod"`
}

// CreateCustomOrder commits a single-product custom order. It never reads or
// writes the cart; it is an independent entry point into the same lifecycle.
func CreateCustomOrder(ctx *gin.Context) {
	var input createCustomOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	fieldErrors := validateCustomerInfo(input.CustomerName, input.Phone, input.District, input.Thana, input.Address)
	if !validatePaymentMethod(input.PaymentMethod) {
		fieldErrors["paymentMethod"] = "Select a payment method"
	}
	if input.Quantity < 1 {
		fieldErrors["quantity"] = "Quantity must be at least 1"
	}
	if input.CustomizationCost.IsNegative() {
		fieldErrors["customizationCost"] = "Customization cost cannot be negative"
	}
	if strings.TrimSpace(input.CustomizationInstructions) == "" && len(input.CustomizationImages) == 0 {
		fieldErrors["customizationInstructions"] = "Describe the customization or attach at least one image"
	}

	// The base price is copied from the catalog at commit time, never
	// trusted from the client.
	var product models.Product
	if err := initializers.DB.First(&product, input.ProductId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fieldErrors["productId"] = "Product not found"
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}

	if len(fieldErrors) > 0 {
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"message": msgValidationFailed,
			"errors":  fieldErrors,
		})
		return
	}

	trackingId, err := allocateTrackingID(initializers.DB)
	if err != nil {
		log.Println("Tracking id allocation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgTrackingIDExhausted)
		return
	}

	customOrder := models.CustomOrder{
		TrackingID:                trackingId,
		ProductId:                 product.ID,
		ProductName:               product.Name,
		CustomerName:              input.CustomerName,
		Phone:                     input.Phone,
		Email:                     input.Email,
		District:                  input.District,
		Thana:                     input.Thana,
		Address:                   input.Address,
		Quantity:                  input.Quantity,
		CustomizationInstructions: input.CustomizationInstructions,
		CustomizationImages:       models.ImageRefList(input.CustomizationImages),
		BasePrice:                 product.Price,
		CustomizationCost:         input.CustomizationCost,
		TotalPrice:                models.CustomOrderTotal(product.Price, input.Quantity, input.CustomizationCost),
		PaymentMethod:             strings.ToLower(input.PaymentMethod),
		Status:                    models.StatusPending,
	}

	if err := initializers.DB.Create(&customOrder).Error; err != nil {
		log.Println("Custom order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"trackingId": customOrder.TrackingID,
		"total":      customOrder.TotalPrice.String(),
	})
}

// GetCustomOrders is the paginated admin listing of custom orders.
func GetCustomOrders(ctx *gin.Context) {
	var customOrders []models.CustomOrder

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Model(&models.CustomOrder{})
	if search := ctx.Query("search"); search != "" {
		query = query.Where("tracking_id LIKE ?", "%"+search+"%")
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	result := query.Order("created_at " + sortOrder).Limit(limit).Offset(offset).Find(&customOrders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrders)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.CustomOrder{})
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("tracking_id LIKE ?", "%"+search+"%")
	}
	if status := ctx.Query("status"); status != "" {
		countQuery = countQuery.Where("status = ?", status)
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"customOrders": customOrders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// UpdateCustomOrderStatus mirrors UpdateOrderStatus for the custom path;
// both entities share one status lifecycle.
func UpdateCustomOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	next, known := models.ParseOrderStatus(orderStatusData.Status)
	if !known {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUnknownStatus)
		return
	}

	var customOrder models.CustomOrder
	if err := initializers.DB.First(&customOrder, orderId).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	if !customOrder.Status.CanTransitionTo(next) {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidTransition)
		return
	}

	result := initializers.DB.Model(&models.CustomOrder{}).
		Where("id = ? AND status = ?", customOrder.ID, customOrder.Status).
		Update("status", next)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusConflict, msgInvalidTransition)
		return
	}

	if err := initializers.DB.First(&customOrder, orderId).Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgStatusUpdateSucceeded,
		"order":   customOrder,
	})
}
