package routes

import (
	"flexmode/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathProducts = "/products"
)

func addCheckoutRoutes(rg *gin.RouterGroup, orderHandler *handlers.CheckoutOrderHandler, verificationHandler *handlers.PaymentVerificationHandler, productHandler *handlers.ProductHandler) {
	checkout := rg.Group(PathCheckout)
	{
		// Two-phase flow: the browser creates an order, hands it to the
		// hosted payment UI, then forwards the callback proof here.
		checkout.POST("/orders", orderHandler.CreateOrder)
		checkout.POST("/verify", verificationHandler.VerifyPayment)
	}

	rg.GET(PathProducts, productHandler.ListProducts)
}
