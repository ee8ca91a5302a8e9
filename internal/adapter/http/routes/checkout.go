package routes

import (
	"chamba_facil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCreatePreference = "/api/create-preference"
	PathSignature        = "/api/signature"
	PathWebhook          = "/webhooks/mercadopago"
)

func addCheckoutRoutes(r *gin.Engine, checkoutHandler *handlers.CheckoutHandler, webhookHandler *handlers.WebhookHandler, mediaHandler *handlers.MediaHandler) {
	r.POST(PathCreatePreference, checkoutHandler.CreatePreference)
	r.GET(PathSignature, mediaHandler.GetSignature)
	r.POST(PathWebhook, webhookHandler.HandleNotification)
}
