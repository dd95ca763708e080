package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/azimeazdhan1231/trynex-lifestyle-api/initializers"
	"github.com/azimeazdhan1231/trynex-lifestyle-api/models"
	"github.com/azimeazdhan1231/trynex-lifestyle-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgValidationFailed      = "Validation failed"
	msgOrderNotFound         = "Order not found"
	msgFailedToCreateOrder   = "Failed to save order"
	msgFailedToFetchOrders   = "Unable to fetch orders"
	msgInvalidTransition     = "Invalid status transition"
	msgUnknownStatus         = "Unknown order status"
	msgTrackingIDExhausted   = "Could not allocate a tracking id"
	msgStatusUpdateSucceeded = "Order status updated successfully."

	trackingIDAttempts = 5
)

// Bangladeshi mobile numbers: 11 digits, 01 then operator digit 3-9.
var phonePattern = regexp.MustCompile(`^01[3-9]\d{8}$`)

type createOrderInput struct {
	CartKey       string `json:"cartKey"`
	CustomerName  string `json:"customerName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	District      string `json:"district"`
	Thana         string `json:"thana"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
}

// validateCustomerInfo checks the delivery and contact fields shared by both
// order paths and reports problems field by field.
func validateCustomerInfo(name, phone, district, thana, address string) map[string]string {
	fieldErrors := map[string]string{}
	if len(strings.TrimSpace(name)) < 2 {
		fieldErrors["customerName"] = "Name must be at least 2 characters"
	}
	if !phonePattern.MatchString(phone) {
		fieldErrors["phone"] = "Enter a valid mobile number (01XXXXXXXXX)"
	}
	if strings.TrimSpace(district) == "" {
		fieldErrors["district"] = "Select a district"
	}
	if strings.TrimSpace(thana) == "" {
		fieldErrors["thana"] = "Select a thana"
	}
	if strings.TrimSpace(address) == "" {
		fieldErrors["address"] = "Address is required"
	}
	return fieldErrors
}

var paymentMethods = map[string]bool{
	"cod":    true,
	"bkash":  true,
	"nagad":  true,
	"upay":   true,
	"rocket": true,
}

func validatePaymentMethod(method string) bool {
	return paymentMethods[strings.ToLower(method)]
}

// trackingIDExists checks both order tables; the public resolver searches
// both, so an id must be unique across them.
func trackingIDExists(db *gorm.DB, trackingId string) (bool, error) {
	var count int64
	if err := db.Model(&models.Order{}).Where("tracking_id = ?", trackingId).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	if err := db.Model(&models.CustomOrder{}).Where("tracking_id = ?", trackingId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// allocateTrackingID generates ids until one is unused. Collisions are
// vanishingly rare; the unique index on tracking_id is the final backstop.
func allocateTrackingID(db *gorm.DB) (string, error) {
	for i := 0; i < trackingIDAttempts; i++ {
		trackingId := utils.GenerateTrackingID(time.Now().UnixMilli())
		exists, err := trackingIDExists(db, trackingId)
		if err != nil {
			return "", err
		}
		if !exists {
			return trackingId, nil
		}
		log.Println("Tracking id collision, regenerating:", trackingId)
	}
	return "", gorm.ErrDuplicatedKey
}

// CreateOrder turns the caller's cart into an immutable order. The cart rows
// are deleted in the same transaction that creates the order, so a failure
// anywhere leaves the cart untouched and resubmission loses nothing.
func CreateOrder(ctx *gin.Context) {
	var input createOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	fieldErrors := validateCustomerInfo(input.CustomerName, input.Phone, input.District, input.Thana, input.Address)
	if !validatePaymentMethod(input.PaymentMethod) {
		fieldErrors["paymentMethod"] = "Select a payment method"
	}

	var cart models.Cart
	err := initializers.DB.Where("cart_key = ?", input.CartKey).Preload("Items").First(&cart).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Cart load error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) || len(cart.Items) == 0 {
		fieldErrors["items"] = "Your cart is empty"
	}

	// Best-effort stock check against the live catalog. There is no
	// reservation; a shortfall is only a validation failure.
	for _, item := range cart.Items {
		var product models.Product
		if err := initializers.DB.First(&product, item.ProductId).Error; err != nil {
			continue
		}
		if product.Stock < item.Quantity {
			fieldErrors["items"] = "Insufficient stock for " + item.ProductName
		}
	}

	if len(fieldErrors) > 0 {
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"message": msgValidationFailed,
			"errors":  fieldErrors,
		})
		return
	}

	snapshot := models.SnapshotCartItems(cart.Items)
	total := models.OrderTotal(snapshot)

	trackingId, err := allocateTrackingID(initializers.DB)
	if err != nil {
		log.Println("Tracking id allocation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgTrackingIDExhausted)
		return
	}

	order := models.Order{
		TrackingID:    trackingId,
		CustomerName:  input.CustomerName,
		Phone:         input.Phone,
		Email:         input.Email,
		District:      input.District,
		Thana:         input.Thana,
		Address:       input.Address,
		Items:         snapshot,
		Total:         total,
		PaymentMethod: strings.ToLower(input.PaymentMethod),
		PaymentAmount: total,
		Status:        models.StatusPending,
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Println("Order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		return
	}

	// The cart is cleared only as part of the successful commit.
	if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		log.Println("Cart clearing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Commit error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		return
	}

	go utils.NotifyOrderCreated(order.TrackingID, order.Total.String())
	if order.Email != "" {
		go sendOrderConfirmationEmail(order)
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"trackingId": order.TrackingID,
		"total":      order.Total.String(),
	})
}

func sendOrderConfirmationEmail(order models.Order) {
	emailData := utils.EmailData{
		Name:        order.CustomerName,
		Message:     "Thank you for your order! Use the tracking id below to follow its progress.",
		TrackingID:  order.TrackingID,
		Total:       order.Total.String(),
		TrackingURL: "https://trynexlifestyle.com/track/" + order.TrackingID,
		LogoURL:     "https://trynexlifestyle.com/images/logo.png",
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	if err := utils.SendEmail(order.Email, "Your Trynex Lifestyle order", emailData, templatePath); err != nil {
		log.Println("Error sending order confirmation email:", err)
	}
}

// GetOrders is the paginated admin listing.
func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Model(&models.Order{})
	if search := ctx.Query("search"); search != "" {
		query = query.Where("tracking_id LIKE ?", "%"+search+"%")
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	result := query.Order("created_at " + sortOrder).Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrders)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
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
		"orders": orders,
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

// GetOrderById is the admin read of a single order.
func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// UpdateOrderStatus applies a lifecycle transition to an order. Illegal
// transitions are rejected without touching status or updated_at. The update
// is guarded on the previously read status, so a concurrent admin edit makes
// this write a no-op instead of a silent overwrite.
func UpdateOrderStatus(ctx *gin.Context) {
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

	var order models.Order
	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}

	if !order.Status.CanTransitionTo(next) {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidTransition)
		return
	}

	result := initializers.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, order.Status).
		Update("status", next)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}
	if result.RowsAffected == 0 {
		// Another admin moved the status between our read and write.
		sendErrorResponse(ctx, http.StatusConflict, msgInvalidTransition)
		return
	}

	if err := initializers.DB.First(&order, orderId).Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgStatusUpdateSucceeded,
		"order":   order,
	})
}

// GetUndeliveredOrders counts orders still in flight for the admin
// dashboard badge.
func GetUndeliveredOrders(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("status NOT IN ?", []models.OrderStatus{models.StatusDelivered, models.StatusCancelled}).
		Count(&count)

	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to count undelivered orders")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"undeliveredOrderCount": count})
}
