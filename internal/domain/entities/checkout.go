package entities

import "time"

// CheckoutStatus tracks one checkout attempt from order creation to
// fulfillment.
//
// Domain notes:
//   - An attempt lives only for the duration of one request pair (create-order,
//     then verify-payment after the buyer finishes the hosted payment UI);
//     nothing is persisted.
//   - cancelled/abandoned attempts never reach the server again, so only the
//     states below show up in logs.
type CheckoutStatus string

const (
	CheckoutStatusInitiated         CheckoutStatus = "initiated"
	CheckoutStatusAwaitingCallback  CheckoutStatus = "awaiting_callback"
	CheckoutStatusVerified          CheckoutStatus = "verified"
	CheckoutStatusFulfilled         CheckoutStatus = "fulfilled"
	CheckoutStatusFulfillmentFailed CheckoutStatus = "fulfillment_failed"
	CheckoutStatusSignatureRejected CheckoutStatus = "signature_rejected"
)

// CheckoutOrder is the gateway-created order handle returned to the browser.
//
// Monetary representation:
//   - Amount is in paise (integer minor units); the gateway is the source of
//     truth for the charged amount, never the client.
type CheckoutOrder struct {
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Receipt     string `json:"receipt"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
}

// PaymentProof is the callback payload produced by the gateway's checkout
// widget. Signature is a hex-encoded HMAC-SHA256 over orderID + "|" + paymentID
// keyed with the secret shared with the gateway.
type PaymentProof struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// Customer is the buyer contact block collected in the checkout modal. It is
// weakly validated (presence/shape only) and used solely as email recipient
// and greeting.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// PaymentConfirmation is the outcome of a verified (and fulfilled) payment.
type PaymentConfirmation struct {
	PaymentID  string    `json:"payment_id"`
	OrderID    string    `json:"order_id"`
	ProductID  string    `json:"product_id"`
	Email      string    `json:"email"`
	VerifiedAt time.Time `json:"verified_at"`
}
