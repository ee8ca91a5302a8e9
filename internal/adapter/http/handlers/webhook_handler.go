package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"chamba_facil/internal/domain/entities"
	"chamba_facil/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives Mercado Pago payment notifications.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleNotification processes a payment notification.
//
// It always answers 200: Mercado Pago redelivers indefinitely on any
// non-success response, so internal failures are logged instead of returned.
//
// @Summary      Mercado Pago webhook
// @Tags         webhooks
// @Accept       json
// @Success      200
// @Router       /webhooks/mercadopago [post]
func (h *WebhookHandler) HandleNotification(c *gin.Context) {
	n := readNotification(c)
	log.Printf("[webhook][handler] notification received topic=%q payment_id=%q", n.Topic, n.PaymentID)

	if err := h.usecase.Reconcile(c.Request.Context(), n); err != nil {
		log.Printf("[webhook][handler] reconcile failed payment_id=%q err=%v", n.PaymentID, err)
	}

	c.Status(http.StatusOK)
}

// readNotification extracts topic and payment id, accepting both the
// body-encoded ({type, data:{id}}) and query-encoded (topic, id) forms the
// provider uses. Body values take precedence when both are present.
func readNotification(c *gin.Context) entities.Notification {
	var body struct {
		Type string `json:"type"`
		Data struct {
			ID any `json:"id"`
		} `json:"data"`
	}

	if raw, err := c.GetRawData(); err == nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			log.Printf("[webhook][handler] unparseable body len=%d err=%v", len(raw), err)
		}
	}

	topic := strings.TrimSpace(body.Type)
	if topic == "" {
		topic = strings.TrimSpace(c.Query("topic"))
	}

	paymentID := stringify(body.Data.ID)
	if paymentID == "" {
		paymentID = strings.TrimSpace(c.Query("id"))
	}

	return entities.Notification{Topic: topic, PaymentID: paymentID}
}

// stringify tolerates the id arriving as a JSON string or number.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		s := strings.TrimSpace(fmt.Sprintf("%v", t))
		if s == "<nil>" {
			return ""
		}
		return s
	}
}
