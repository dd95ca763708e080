package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/azimeazdhan1231/trynex-lifestyle-api/initializers"
	"github.com/azimeazdhan1231/trynex-lifestyle-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// One message for every non-match, so a failed lookup never reveals whether
// the id was malformed or simply absent.
const msgTrackingNotFound = "No order found for this tracking id"

type trackingItem struct {
	Name          string                `json:"name"`
	Quantity      int                   `json:"quantity"`
	Price         string                `json:"price"`
	Customization *models.Customization `json:"customization,omitempty"`
}

type timelineEntry struct {
	Event string    `json:"event"`
	At    time.Time `json:"at"`
}

// trackingProjection is the customer-safe view of an order: no phone, no
// email, no street address, no internal ids.
type trackingProjection struct {
	TrackingID      string             `json:"trackingId"`
	OrderType       string             `json:"orderType"`
	Status          models.OrderStatus `json:"status"`
	DeliverySummary string             `json:"deliverySummary"`
	Items           []trackingItem     `json:"items"`
	Total           string             `json:"total"`
	Timeline        []timelineEntry    `json:"timeline"`
}

func buildTimeline(status models.OrderStatus, createdAt, updatedAt time.Time) []timelineEntry {
	timeline := []timelineEntry{{Event: "Order placed", At: createdAt}}
	if updatedAt.After(createdAt) {
		timeline = append(timeline, timelineEntry{Event: "Status changed to " + status.String(), At: updatedAt})
	}
	return timeline
}

func deliverySummary(thana, district string) string {
	if thana == "" {
		return district
	}
	return thana + ", " + district
}

func buildOrderProjection(order models.Order) trackingProjection {
	items := make([]trackingItem, 0, len(order.Items))
	for i := range order.Items {
		items = append(items, trackingItem{
			Name:          order.Items[i].Name,
			Quantity:      order.Items[i].Quantity,
			Price:         order.Items[i].Price.String(),
			Customization: order.Items[i].Customization,
		})
	}
	return trackingProjection{
		TrackingID:      order.TrackingID,
		OrderType:       "order",
		Status:          order.Status,
		DeliverySummary: deliverySummary(order.Thana, order.District),
		Items:           items,
		Total:           order.Total.String(),
		Timeline:        buildTimeline(order.Status, order.CreatedAt, order.UpdatedAt),
	}
}

func buildCustomOrderProjection(customOrder models.CustomOrder) trackingProjection {
	item := trackingItem{
		Name:     customOrder.ProductName,
		Quantity: customOrder.Quantity,
		Price:    customOrder.BasePrice.String(),
	}
	if len(customOrder.CustomizationImages) > 0 || customOrder.CustomizationInstructions != "" {
		item.Customization = &models.Customization{
			CustomText: customOrder.CustomizationInstructions,
			Images:     customOrder.CustomizationImages,
		}
	}
	return trackingProjection{
		TrackingID:      customOrder.TrackingID,
		OrderType:       "custom_order",
		Status:          customOrder.Status,
		DeliverySummary: deliverySummary(customOrder.Thana, customOrder.District),
		Items:           []trackingItem{item},
		Total:           customOrder.TotalPrice.String(),
		Timeline:        buildTimeline(customOrder.Status, customOrder.CreatedAt, customOrder.UpdatedAt),
	}
}

// TrackOrder is the public lookup. The id is untrusted and matched exactly;
// only a single-id lookup exists, never a listing or a partial match.
func TrackOrder(ctx *gin.Context) {
	trackingId := ctx.Param("trackingId")

	var order models.Order
	err := initializers.DB.Where("tracking_id = ?", trackingId).First(&order).Error
	if err == nil {
		ctx.JSON(http.StatusOK, buildOrderProjection(order))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	var customOrder models.CustomOrder
	err = initializers.DB.Where("tracking_id = ?", trackingId).First(&customOrder).Error
	if err == nil {
		ctx.JSON(http.StatusOK, buildCustomOrderProjection(customOrder))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendErrorResponse(ctx, http.StatusNotFound, msgTrackingNotFound)
}
