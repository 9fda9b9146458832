package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"flexmode/internal/domain/entities"
	"flexmode/internal/usecase/interfaces"
)

const mailTimeout = 10 * time.Second

var (
	ErrInvalidSignature    = errors.New("invalid payment signature")
	ErrInvalidPaymentProof = errors.New("invalid payment proof")
	ErrFulfillmentFailed   = errors.New("failed to send fulfillment email")
)

// IPaymentVerificationUseCase encapsulates the post-payment half of a
// checkout: confirm the gateway callback is genuine, then deliver the
// purchased download link by email.
type IPaymentVerificationUseCase interface {
	VerifyAndFulfill(ctx context.Context, proof entities.PaymentProof, productID string, customer entities.Customer) (entities.PaymentConfirmation, error)
}

type PaymentVerificationUseCase struct {
	gateway interfaces.IPaymentGateway
	mailer  interfaces.IMailSender
}

var _ IPaymentVerificationUseCase = (*PaymentVerificationUseCase)(nil)

func NewPaymentVerificationUseCase(gateway interfaces.IPaymentGateway, mailer interfaces.IMailSender) *PaymentVerificationUseCase {
	return &PaymentVerificationUseCase{gateway: gateway, mailer: mailer}
}

func (u *PaymentVerificationUseCase) VerifyAndFulfill(ctx context.Context, proof entities.PaymentProof, productID string, customer entities.Customer) (entities.PaymentConfirmation, error) {
	productID = strings.TrimSpace(productID)
	log.Printf("[verify][usecase] verify start order_id=%s payment_id=%s product_id=%q", proof.OrderID, proof.PaymentID, productID)

	if proof.OrderID == "" || proof.PaymentID == "" || proof.Signature == "" {
		log.Printf("[verify][usecase] incomplete proof order_id=%q payment_id=%q", proof.OrderID, proof.PaymentID)
		return entities.PaymentConfirmation{}, ErrInvalidPaymentProof
	}
	if u.gateway == nil {
		return entities.PaymentConfirmation{}, errors.New("payment gateway not configured")
	}

	// Signature is the one security-critical gate and runs before anything
	// else; on mismatch no other work happens.
	if !u.gateway.VerifySignature(proof.OrderID, proof.PaymentID, proof.Signature) {
		log.Printf("[verify][usecase] signature mismatch order_id=%s payment_id=%s status=%s",
			proof.OrderID, proof.PaymentID, entities.CheckoutStatusSignatureRejected)
		return entities.PaymentConfirmation{}, ErrInvalidSignature
	}

	product, ok := entities.ProductByID(productID)
	if !ok {
		log.Printf("[verify][usecase] unknown product product_id=%q payment_id=%s", productID, proof.PaymentID)
		return entities.PaymentConfirmation{}, ErrInvalidProduct
	}

	confirmation := entities.PaymentConfirmation{
		PaymentID:  proof.PaymentID,
		OrderID:    proof.OrderID,
		ProductID:  product.ID,
		Email:      customer.Email,
		VerifiedAt: time.Now().UTC(),
	}

	// The payment is a verified business fact regardless of whether the mail
	// goes out, so it is logged before dispatch. There is no store; a failed
	// send is only recoverable by replaying the callback.
	log.Printf("[verify][usecase] payment verified order_id=%s payment_id=%s product_id=%s customer_email=%s status=%s",
		proof.OrderID, proof.PaymentID, product.ID, customer.Email, entities.CheckoutStatusVerified)

	if u.mailer == nil {
		return entities.PaymentConfirmation{}, errors.New("mail sender not configured")
	}

	subject := fmt.Sprintf("Your FlexMode Purchase - %s", product.Name)
	body, err := RenderFulfillmentEmail(customer.Name, product.Name, product.PDFURL)
	if err != nil {
		log.Printf("[verify][usecase] email render failed payment_id=%s err=%v", proof.PaymentID, err)
		return entities.PaymentConfirmation{}, fmt.Errorf("%w: %v", ErrFulfillmentFailed, err)
	}

	mailCtx, cancel := context.WithTimeout(ctx, mailTimeout)
	defer cancel()

	if err := u.mailer.Send(mailCtx, customer.Email, subject, body); err != nil {
		log.Printf("[verify][usecase] email dispatch failed payment_id=%s to=%s status=%s err=%v",
			proof.PaymentID, customer.Email, entities.CheckoutStatusFulfillmentFailed, err)
		return entities.PaymentConfirmation{}, fmt.Errorf("%w: %v", ErrFulfillmentFailed, err)
	}

	log.Printf("[verify][usecase] fulfillment email sent payment_id=%s to=%s status=%s",
		proof.PaymentID, customer.Email, entities.CheckoutStatusFulfilled)
	return confirmation, nil
}
