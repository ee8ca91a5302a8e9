package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"chamba_facil/internal/domain/entities"
	"chamba_facil/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCheckoutNotConfigured = errors.New("payment gateway not configured")
	ErrPreferenceCreation    = errors.New("preference creation failed")
)

// providerTimeout bounds every outbound provider call. Expiry surfaces as the
// same failure class as any other provider error.
const providerTimeout = 10 * time.Second

// statementDescriptor shows on the buyer's bank statement.
const statementDescriptor = "CHAMBA FACIL"

// excludedPaymentTypes limits checkout to cash-voucher (OXXO) and bank
// transfer (SPEI); card types are excluded and installments stay at 1 since
// cash and transfer methods are not installment-eligible.
var excludedPaymentTypes = []string{"credit_card", "debit_card", "prepaid_card", "atm"}

// ICheckoutUseCase exposes checkout-preference creation.

type ICheckoutUseCase interface {
	CreatePreference(ctx context.Context, planID, displayName string) (entities.CheckoutPreference, error)
}

type CheckoutUseCase struct {
	catalog entities.Catalog
	gateway interfaces.IPreferenceGateway
	baseURL string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(catalog entities.Catalog, gateway interfaces.IPreferenceGateway, baseURL string) *CheckoutUseCase {
	return &CheckoutUseCase{catalog: catalog, gateway: gateway, baseURL: strings.TrimRight(baseURL, "/")}
}

// CreatePreference resolves the plan (unknown ids degrade to the default
// plan), builds the provider order and submits it. Not idempotent: each call
// creates a new remote preference.
func (u *CheckoutUseCase) CreatePreference(ctx context.Context, planID, displayName string) (entities.CheckoutPreference, error) {
	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured plan=%q", planID)
		return entities.CheckoutPreference{}, ErrCheckoutNotConfigured
	}

	plan := u.catalog.Resolve(planID)
	amount := u.catalog.Amount(planID)

	title := strings.TrimSpace(displayName)
	if title == "" {
		title = plan.Title
	}

	order := entities.PreferenceOrder{
		Title:             title,
		Description:       plan.Title,
		Quantity:          1,
		UnitPrice:         amount,
		CurrencyID:        entities.CurrencyMXN,
		ExternalReference: uuid.NewString(),
		BackURLs: entities.RedirectURLs{
			Success: u.baseURL + "/gracias.html?status=success",
			Failure: u.baseURL + "/gracias.html?status=failure",
			Pending: u.baseURL + "/gracias.html?status=pending",
		},
		NotificationURL:      u.baseURL + "/webhooks/mercadopago",
		ExcludedPaymentTypes: excludedPaymentTypes,
		Installments:         1,
		StatementDescriptor:  statementDescriptor,
		BinaryMode:           true,
		Metadata:             map[string]any{"plan": plan.ID},
	}

	log.Printf("[checkout][usecase] create preference plan=%s amount=%.2f external_reference=%s", plan.ID, amount, order.ExternalReference)

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	pref, err := u.gateway.CreatePreference(ctx, order)
	if err != nil {
		// Provider detail stays in server logs; callers get the sentinel only.
		log.Printf("[checkout][usecase] preference creation failed plan=%s err=%v", plan.ID, err)
		return entities.CheckoutPreference{}, ErrPreferenceCreation
	}
	log.Printf("[checkout][usecase] preference created plan=%s preference_id=%s", plan.ID, pref.ID)
	return pref, nil
}
