package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is one line of an order's immutable snapshot. It copies the
// catalog values in effect at commit time; later catalog edits never touch
// it.
type OrderItem struct {
	ProductId     uint            `json:"productId"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	Customization *Customization  `json:"customization,omitempty"`
}

// OrderItemList stores the snapshot as a single JSON column, schema-checked
// on read by unmarshalling into the typed items.
type OrderItemList []OrderItem

func (l OrderItemList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *OrderItemList) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("unsupported order items column type %T", value)
	}
	return json.Unmarshal(data, l)
}

// Order is write-once after creation; only Status and UpdatedAt ever change,
// and only through the admin transition endpoint.
type Order struct {
	gorm.Model
	// Binary collation so lookups compare tracking ids case-sensitively.
	TrackingID    string          `json:"trackingId" gorm:"type:varchar(40) COLLATE utf8mb4_bin;uniqueIndex"`
	CustomerName  string          `json:"customerName"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	District      string          `json:"district"`
	Thana         string          `json:"thana"`
	Address       string          `json:"address"`
	Items         OrderItemList   `json:"items" gorm:"type:json"`
	Total         decimal.Decimal `json:"total" gorm:"type:decimal(12,2)"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentAmount decimal.Decimal `json:"paymentAmount" gorm:"type:decimal(12,2)"`
	Status        OrderStatus     `json:"status" gorm:"size:16;index"`
}

func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

// SnapshotCartItems deep-copies cart lines into order items. The copy shares
// nothing with the cart rows, so clearing the cart afterwards cannot affect
// the order.
func SnapshotCartItems(items []CartItem) OrderItemList {
	snapshot := make(OrderItemList, 0, len(items))
	for i := range items {
		line := OrderItem{
			ProductId: items[i].ProductId,
			Name:      items[i].ProductName,
			Price:     items[i].UnitPrice,
			Quantity:  items[i].Quantity,
		}
		if !items[i].Customization.IsZero() {
			c := *items[i].Customization
			c.Images = append([]string(nil), items[i].Customization.Images...)
			line.Customization = &c
		}
		snapshot = append(snapshot, line)
	}
	return snapshot
}

// OrderTotal sums price × quantity over a snapshot.
func OrderTotal(items OrderItemList) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Subtotal())
	}
	return total
}
