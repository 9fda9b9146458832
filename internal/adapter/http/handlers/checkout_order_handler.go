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

// CheckoutOrderHandler handles HTTP requests for order initiation.

type CheckoutOrderHandler struct {
	usecase usecase.ICheckoutOrderUseCase
}

func NewCheckoutOrderHandler(uc usecase.ICheckoutOrderUseCase) *CheckoutOrderHandler {
	return &CheckoutOrderHandler{usecase: uc}
}

// CreateOrder prices a catalog product with GST and creates a gateway order
// the browser can hand to the hosted checkout widget.
func (h *CheckoutOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CheckoutOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	productID := payload.ResolveProductID()
	log.Printf("[checkout][handler] create-order start product_id=%s", productID)

	order, err := h.usecase.CreateOrder(c.Request.Context(), productID)
	if err != nil {
		log.Printf("[checkout][handler] create-order failed product_id=%s err=%v", productID, err)
		appErr := mapCheckoutOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[checkout][handler] create-order success product_id=%s order_id=%s", productID, order.OrderID)
	c.JSON(http.StatusOK, response.FromCheckoutOrder(order))
}

func mapCheckoutOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT", "Invalid product", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayFailure):
		return pkg.NewDomainError("GATEWAY_ERROR", "Failed to create order", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
