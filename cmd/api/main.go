package main

import (
	_ "flexmode/docs"
	"flexmode/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           FlexMode Checkout API
// @version         1.0
// @description     Digital-goods checkout: Razorpay order creation, callback signature verification and email fulfillment.

// @contact.name   FlexMode Support
// @contact.email  support@flexmode.in

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
