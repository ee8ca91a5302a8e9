package routes

import (
	"log"
	"strconv"

	_ "chamba_facil/docs" // swagger spec, generated
	"chamba_facil/internal/adapter/http/handlers"
	repository2 "chamba_facil/internal/adapter/persistence/repository"
	"chamba_facil/internal/infrastructure/config"
	"chamba_facil/internal/infrastructure/database"
	"chamba_facil/internal/infrastructure/media"
	"chamba_facil/internal/infrastructure/payments"
	"chamba_facil/internal/usecase"
	"chamba_facil/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)
	addStaticRoutes(router, cfg.StaticDir)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()
	activationRepo := repository2.NewActivationDynamoRepository(ddb)

	// A missing token degrades checkout and reconciliation to error
	// responses; the rest of the server keeps running.
	var preferenceGateway interfaces.IPreferenceGateway
	var paymentReader interfaces.IPaymentReader
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MPAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		preferenceGateway = mpGateway
		paymentReader = mpGateway
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(cfg.Catalog, preferenceGateway, cfg.BaseURL())
	webhookUseCase := usecase.NewWebhookUseCase(paymentReader, activationRepo)
	mediaUseCase := usecase.NewMediaUseCase(media.NewCloudinarySigner(cfg.CloudinaryCloudName, cfg.CloudinaryKey, cfg.CloudinarySecret))

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	mediaHandler := handlers.NewMediaHandler(mediaUseCase)

	// Rutas públicas
	addPingRoutes(router)
	addCheckoutRoutes(router, checkoutHandler, webhookHandler, mediaHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	// The checkout page may be served from another origin during development.
	router.Use(cors.Default())
}
