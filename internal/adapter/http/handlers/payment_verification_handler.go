package handlers

import (
	"errors"
	"log"
	"net/http"

	request "flexmode/internal/adapter/http/dto/request"
	response "flexmode/internal/adapter/http/dto/response"
	"flexmode/internal/usecase"
	"flexmode/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentVerificationHandler handles the gateway callback the browser forwards
// after the hosted payment UI completes.

type PaymentVerificationHandler struct {
	usecase usecase.IPaymentVerificationUseCase
}

func NewPaymentVerificationHandler(uc usecase.IPaymentVerificationUseCase) *PaymentVerificationHandler {
	return &PaymentVerificationHandler{usecase: uc}
}

// VerifyPayment checks the callback signature and, when genuine, emails the
// buyer the purchased download link.
func (h *PaymentVerificationHandler) VerifyPayment(c *gin.Context) {
	var payload request.PaymentVerificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[verify][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	proof, err := payload.ResolveProof()
	if err != nil {
		log.Printf("[verify][handler] incomplete proof err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[verify][handler] verify start order_id=%s payment_id=%s", proof.OrderID, proof.PaymentID)

	confirmation, err := h.usecase.VerifyAndFulfill(c.Request.Context(), proof, payload.ResolveProductID(), payload.ResolveCustomer())
	if err != nil {
		log.Printf("[verify][handler] verify failed order_id=%s payment_id=%s err=%v", proof.OrderID, proof.PaymentID, err)
		appErr := mapPaymentVerificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[verify][handler] verify success payment_id=%s", confirmation.PaymentID)
	c.JSON(http.StatusOK, response.FromPaymentConfirmation(confirmation))
}

func mapPaymentVerificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSignature):
		// No provider detail leaks past the generic message here.
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid payment signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentProof):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT", "Invalid product", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFulfillmentFailed):
		return pkg.NewDomainError("FULFILLMENT_ERROR", "Payment verified but email delivery failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Payment verification failed", err, http.StatusInternalServerError)
	}
}
