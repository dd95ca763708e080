package utils

import (
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyOrderCreated posts {trackingId, total} to the configured webhook so
// the storefront can show the confirmation and deep-link the tracking page.
// Delivery is best effort: a failure is logged and never blocks the order.
func NotifyOrderCreated(trackingId string, total string) {
	webhookURL := os.Getenv("NOTIFICATION_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}

	payload := map[string]string{
		"trackingId": trackingId,
		"total":      total,
	}

	resp, err := resty.New().SetTimeout(10*time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(webhookURL)

	if err != nil {
		log.Printf("Order notification failed for %s: %v", trackingId, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Order notification for %s returned status %d", trackingId, resp.StatusCode())
	}
}
