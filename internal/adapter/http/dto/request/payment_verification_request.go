package request

import (
	"errors"
	"strings"

	"flexmode/internal/domain/entities"
)

var ErrIncompleteProof = errors.New("incomplete payment proof")

// CustomerRequest is the buyer contact block forwarded from the checkout
// modal. Validation stays weak (presence and email shape); these fields are
// only used as mail recipient and greeting.
type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// PaymentVerificationRequest is the gateway callback payload the browser
// forwards after the hosted payment UI completes. Field names follow the
// Razorpay widget's handler response.
type PaymentVerificationRequest struct {
	RazorpayOrderID   string          `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string          `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string          `json:"razorpay_signature" binding:"required"`
	ProductID         string          `json:"productId" binding:"required"`
	Customer          CustomerRequest `json:"customer" binding:"required"`
}

func (r PaymentVerificationRequest) ResolveProof() (entities.PaymentProof, error) {
	proof := entities.PaymentProof{
		OrderID:   strings.TrimSpace(r.RazorpayOrderID),
		PaymentID: strings.TrimSpace(r.RazorpayPaymentID),
		Signature: strings.TrimSpace(r.RazorpaySignature),
	}
	if proof.OrderID == "" || proof.PaymentID == "" || proof.Signature == "" {
		return entities.PaymentProof{}, ErrIncompleteProof
	}
	return proof, nil
}

func (r PaymentVerificationRequest) ResolveCustomer() entities.Customer {
	return entities.Customer{
		Name:  strings.TrimSpace(r.Customer.Name),
		Email: strings.TrimSpace(r.Customer.Email),
		Phone: strings.TrimSpace(r.Customer.Phone),
		City:  strings.TrimSpace(r.Customer.City),
	}
}

func (r PaymentVerificationRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}
