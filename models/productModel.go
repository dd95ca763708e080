package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
}

// Product is the read-only catalog record the cart and the assemblers
// validate against. Cart lines and order snapshots copy its values at
// commit time and never read it again.
type Product struct {
	gorm.Model
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Category     string          `json:"category" binding:"required"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Stock        int             `json:"stock"`
	ImageUrl     string          `json:"imageUrl"`
	Customizable bool            `json:"customizable"`
	Colors       datatypes.JSON  `json:"colors"`
	Sizes        datatypes.JSON  `json:"sizes"`
	Images       []ProductImage  `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
