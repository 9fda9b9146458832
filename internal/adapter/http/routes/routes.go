package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "flexmode/docs" // This will be auto-generated
	"flexmode/internal/adapter/http/handlers"
	"flexmode/internal/infrastructure/mail"
	"flexmode/internal/infrastructure/payments"
	"flexmode/internal/usecase"
	"flexmode/internal/usecase/interfaces"
	"flexmode/pkg"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Checkout endpoints are POST-only; anything else gets a 405 envelope.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		appErr := pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Method not allowed", http.StatusMethodNotAllowed)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	var gateway interfaces.IPaymentGateway
	rzpGateway, err := payments.NewRazorpayGateway(os.Getenv("RAZORPAY_KEY_ID"), os.Getenv("RAZORPAY_KEY_SECRET"))
	if err != nil {
		log.Printf("Razorpay gateway not configured: %v", err)
	} else {
		gateway = rzpGateway
	}

	mailer := mail.NewSMTPSenderFromEnv()

	orderUseCase := usecase.NewCheckoutOrderUseCase(gateway)
	verificationUseCase := usecase.NewPaymentVerificationUseCase(gateway, mailer)

	orderHandler := handlers.NewCheckoutOrderHandler(orderUseCase)
	verificationHandler := handlers.NewPaymentVerificationHandler(verificationUseCase)
	productHandler := handlers.NewProductHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, orderHandler, verificationHandler, productHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
