package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ImageRefList stores an ordered list of uploaded image references in a
// single JSON column.
type ImageRefList []string

func (l ImageRefList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *ImageRefList) Scan(value any) error {
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
		return fmt.Errorf("unsupported image list column type %T", value)
	}
	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// CustomOrder is the single-product customization path. It is its own
// top-level entity, not a cart line, and shares the Order status lifecycle.
type CustomOrder struct {
	gorm.Model
	// Binary collation so lookups compare tracking ids case-sensitively.
	TrackingID                string          `json:"trackingId" gorm:"type:varchar(40) COLLATE utf8mb4_bin;uniqueIndex"`
	ProductId                 uint            `json:"productId"`
	ProductName               string          `json:"productName"`
	CustomerName              string          `json:"customerName"`
	Phone                     string          `json:"phone"`
	Email                     string          `json:"email"`
	District                  string          `json:"district"`
	Thana                     string          `json:"thana"`
	Address                   string          `json:"address"`
	Quantity                  int             `json:"quantity"`
	CustomizationInstructions string          `json:"customizationInstructions" gorm:"type:text"`
	CustomizationImages       ImageRefList    `json:"customizationImages" gorm:"type:json"`
	BasePrice                 decimal.Decimal `json:"basePrice" gorm:"type:decimal(12,2)"`
	CustomizationCost         decimal.Decimal `json:"customizationCost" gorm:"type:decimal(12,2)"`
	TotalPrice                decimal.Decimal `json:"totalPrice" gorm:"type:decimal(12,2)"`
	PaymentMethod             string          `json:"paymentMethod"`
	Status                    OrderStatus     `json:"status" gorm:"size:16;index"`
}

// CustomOrderTotal is basePrice × quantity + customizationCost.
func CustomOrderTotal(basePrice decimal.Decimal, quantity int, customizationCost decimal.Decimal) decimal.Decimal {
	return basePrice.Mul(decimal.NewFromInt(int64(quantity))).Add(customizationCost)
}
