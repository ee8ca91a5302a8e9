package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"chamba_facil/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMPAccessToken = errors.New("missing MP_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrMalformedProviderResponse = errors.New("provider response missing redirect url")
var ErrInvalidPaymentID = errors.New("invalid payment id")

// MercadoPagoGateway adapts the Mercado Pago SDK to the narrow domain
// interfaces. Provider response shapes are normalized here, once, so call
// sites never unwrap SDK types.
type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	mockMode    bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MP_ACCESS_TOKEN")
		return nil, ErrMissingMPAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
	}, nil
}

// CreatePreference submits a checkout order and returns the normalized
// preference result. Each call creates a new remote preference; idempotency
// is the caller's concern.
func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, order entities.PreferenceOrder) (entities.CheckoutPreference, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock preference created id=%s title=%q amount=%.2f", id, order.Title, order.UnitPrice)
		return entities.CheckoutPreference{
			ID:               id,
			InitPoint:        "https://www.mercadopago.com.mx/checkout/v1/redirect?pref_id=" + id,
			SandboxInitPoint: "https://sandbox.mercadopago.com.mx/checkout/v1/redirect?pref_id=" + id,
		}, nil
	}

	if g == nil || g.preferences == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.CheckoutPreference{}, ErrMercadoPagoGatewayNotConfigured
	}

	excluded := make([]preference.ExcludedPaymentTypeRequest, 0, len(order.ExcludedPaymentTypes))
	for _, id := range order.ExcludedPaymentTypes {
		excluded = append(excluded, preference.ExcludedPaymentTypeRequest{ID: id})
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       order.Title,
				Description: order.Description,
				Quantity:    order.Quantity,
				CurrencyID:  order.CurrencyID,
				UnitPrice:   order.UnitPrice,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: order.BackURLs.Success,
			Failure: order.BackURLs.Failure,
			Pending: order.BackURLs.Pending,
		},
		AutoReturn:          "approved",
		NotificationURL:     order.NotificationURL,
		ExternalReference:   order.ExternalReference,
		StatementDescriptor: order.StatementDescriptor,
		BinaryMode:          order.BinaryMode,
		Metadata:            order.Metadata,
	}
	if len(excluded) > 0 || order.Installments > 0 {
		req.PaymentMethods = &preference.PaymentMethodsRequest{
			ExcludedPaymentTypes: excluded,
			Installments:         order.Installments,
		}
	}

	log.Printf("[payment][gateway] preference create start external_reference=%s amount=%.2f", order.ExternalReference, order.UnitPrice)
	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] preference create failed err=%v", err)
		return entities.CheckoutPreference{}, err
	}
	if resp == nil || resp.InitPoint == "" {
		log.Printf("[payment][gateway] preference response missing init_point")
		return entities.CheckoutPreference{}, ErrMalformedProviderResponse
	}
	log.Printf("[payment][gateway] preference create success id=%s", resp.ID)

	return entities.CheckoutPreference{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

// GetPayment fetches the authoritative payment record using the server-held
// bearer credential. Webhook payloads are never trusted for status; this read
// is the only source of truth.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, id string) (entities.PaymentRecord, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock payment fetch id=%s", id)
		return entities.PaymentRecord{
			ID:              id,
			Status:          entities.PaymentStatusApproved,
			StatusDetail:    "accredited",
			PaymentTypeID:   "bank_transfer",
			PaymentMethodID: "spei",
		}, nil
	}

	if g == nil || g.payments == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentRecord{}, ErrMercadoPagoGatewayNotConfigured
	}

	numericID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		log.Printf("[payment][gateway] non-numeric payment id=%q", id)
		return entities.PaymentRecord{}, ErrInvalidPaymentID
	}

	resp, err := g.payments.Get(ctx, numericID)
	if err != nil {
		log.Printf("[payment][gateway] payment fetch failed id=%s err=%v", id, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[payment][gateway] payment fetch success id=%d status=%s detail=%s type=%s method=%s",
		resp.ID, resp.Status, resp.StatusDetail, resp.PaymentTypeID, resp.PaymentMethodID)

	return entities.PaymentRecord{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		PaymentTypeID:     resp.PaymentTypeID,
		PaymentMethodID:   resp.PaymentMethodID,
		ExternalReference: resp.ExternalReference,
		Amount:            resp.TransactionAmount,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
