package interfaces

import (
	"context"

	"flexmode/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Razorpay).
//
// The checkout flow uses it to create a trackable order for the tax-inclusive
// total and to check the HMAC signature the provider's widget hands back after
// the buyer pays.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string, notes map[string]interface{}) (entities.CheckoutOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}
