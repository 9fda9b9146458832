package response

import "flexmode/internal/domain/entities"

// PaymentVerificationResponse is the verify-payment success envelope.
type PaymentVerificationResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PaymentID string `json:"paymentId"`
}

func FromPaymentConfirmation(c entities.PaymentConfirmation) PaymentVerificationResponse {
	return PaymentVerificationResponse{
		Success:   true,
		Message:   "Payment verified and email sent",
		PaymentID: c.PaymentID,
	}
}
