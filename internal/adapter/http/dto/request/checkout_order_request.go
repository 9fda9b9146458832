package request

import "strings"

// CheckoutOrderRequest is the create-order payload sent by the checkout modal.
type CheckoutOrderRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func (r CheckoutOrderRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}
