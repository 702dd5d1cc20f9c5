package transport

import (
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/cart_service/internal/models"
)

// Pointer fields tell a missing field apart from an explicit zero.
type AddToCartRequest struct {
	UserID     *int64           `json:"user_id"`
	ProductID  *int64           `json:"product_id"`
	Quantity   *int64           `json:"quantity"`
	ProductMRP *decimal.Decimal `json:"product_mrp"`
}

type UpdateQuantityRequest struct {
	UserID    *int64 `json:"user_id"`
	ProductID *int64 `json:"product_id"`
	Quantity  *int64 `json:"quantity"`
}

type MessageResponse struct {
	Message string           `json:"message"`
	Status  int              `json:"status"`
	Item    *models.CartItem `json:"item,omitempty"`
}

type EmptyCartResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Removed int64  `json:"removed"`
}
