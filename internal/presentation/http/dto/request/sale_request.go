package request

import "github.com/nasaem/pos-api/internal/domain/enum"

// CartLineRequest is one cart line in a checkout payload
type CartLineRequest struct {
	Name      string  `json:"name" binding:"required"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unitPrice" binding:"gte=0"`
}

// CreateSaleRequest is the checkout payload: the cart snapshot, the
// completion timestamp (ms epoch) and the payment method tag. An empty items
// list is accepted and ignored downstream — empty carts never become sales.
type CreateSaleRequest struct {
	Items         []CartLineRequest  `json:"items" binding:"dive"`
	Timestamp     int64              `json:"timestamp" binding:"required,gt=0"`
	PaymentMethod enum.PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash card"`
}
