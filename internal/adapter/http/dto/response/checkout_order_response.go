package response

import "flexmode/internal/domain/entities"

// CheckoutOrderResponse is the create-order success envelope. Amount is in
// paise as reported back by the gateway.
type CheckoutOrderResponse struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"orderId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
}

func FromCheckoutOrder(o entities.CheckoutOrder) CheckoutOrderResponse {
	return CheckoutOrderResponse{
		Success:     true,
		OrderID:     o.OrderID,
		Amount:      o.Amount,
		Currency:    o.Currency,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
	}
}
