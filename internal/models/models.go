package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one (user, product) line of a cart. UnitPrice is the price
// captured when the line was added, TotalPrice is kept equal to
// Quantity * UnitPrice on every write.
type CartItem struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"                        json:"id"`
	UserID     int64           `gorm:"uniqueIndex:idx_cart_user_product;not null"      json:"user_id"`
	ProductID  int64           `gorm:"uniqueIndex:idx_cart_user_product;not null"      json:"product_id"`
	Quantity   int64           `gorm:"not null;check:quantity >= 0"                    json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"column:product_mrp;type:numeric(12,2);not null"  json:"product_mrp"`
	TotalPrice decimal.Decimal `gorm:"column:total_mrp;type:numeric(14,2);not null"    json:"total_mrp"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (CartItem) TableName() string {
	return "cart"
}

// PriceScale is the number of fractional digits both price columns keep.
const PriceScale = 2

// Upper bounds (exclusive) of numeric(12,2) and numeric(14,2).
var (
	MaxUnitPrice  = decimal.New(1, 10)
	MaxTotalPrice = decimal.New(1, 12)
)

// ValidUnitPrice reports whether p is stored by product_mrp without rounding
// or overflow.
func ValidUnitPrice(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThan(MaxUnitPrice) && p.Equal(p.Round(PriceScale))
}

// ValidTotalPrice reports whether t fits total_mrp.
func ValidTotalPrice(t decimal.Decimal) bool {
	return !t.IsNegative() && t.LessThan(MaxTotalPrice)
}

func LineTotal(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity))
}
