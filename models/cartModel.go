package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID        uint            `json:"-"`
	ProductId     uint            `json:"productId"`
	ProductName   string          `json:"productName"`
	UnitPrice     decimal.Decimal `json:"unitPrice" gorm:"type:decimal(12,2)"`
	Quantity      int             `json:"quantity"`
	ImageUrl      string          `json:"imageUrl"`
	Customization *Customization  `json:"customization,omitempty" gorm:"type:json"`
	IdentityKey   string          `json:"-" gorm:"size:512;index"`
}

// Cart is owned by exactly one client via CartKey, an opaque session or
// user identifier the client threads through every cart call.
type Cart struct {
	gorm.Model
	CartKey string     `json:"cartKey" gorm:"size:64;uniqueIndex"`
	Items   []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// Subtotal is unitPrice × quantity in exact decimal arithmetic.
func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// CartTotal recomputes the cart total from its lines. It is never cached.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Subtotal())
	}
	return total
}

func (c *Cart) Total() decimal.Decimal {
	return CartTotal(c.Items)
}
