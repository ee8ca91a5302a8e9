package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"chamba_facil/internal/domain/entities"
	"chamba_facil/internal/usecase/interfaces"
)

var (
	ErrWebhookNotConfigured = errors.New("payment reader not configured")
	ErrPaymentFetch         = errors.New("payment fetch failed")
)

// IWebhookUseCase reconciles provider notifications against authoritative
// payment state.

type IWebhookUseCase interface {
	Reconcile(ctx context.Context, n entities.Notification) error
}

// WebhookUseCase drives the notification state machine:
//
//	Received -> Unverifiable   topic != "payment" or no id; logged and dropped
//	Received -> Fetching       authenticated read of the payment record
//	Fetching -> FetchFailed    provider error; logged, no retry (the provider
//	                           redelivers on its own schedule)
//	Fetching -> Reconciled     on "approved", activate the profile exactly
//	                           once per payment id
//
// The incoming notification is never trusted for status; only the fetched
// record drives transitions.
type WebhookUseCase struct {
	payments    interfaces.IPaymentReader
	activations interfaces.IActivationRepository
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(payments interfaces.IPaymentReader, activations interfaces.IActivationRepository) *WebhookUseCase {
	return &WebhookUseCase{payments: payments, activations: activations}
}

// Reconcile processes one notification. Errors are for observability only;
// the HTTP handler acknowledges the provider with 200 regardless.
func (u *WebhookUseCase) Reconcile(ctx context.Context, n entities.Notification) error {
	if !n.Verifiable() {
		log.Printf("[webhook][usecase] unverifiable notification topic=%q payment_id=%q; dropped", n.Topic, n.PaymentID)
		return nil
	}
	if u.payments == nil {
		log.Printf("[webhook][usecase] payment reader not configured payment_id=%s", n.PaymentID)
		return ErrWebhookNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	rec, err := u.payments.GetPayment(ctx, n.PaymentID)
	if err != nil {
		log.Printf("[webhook][usecase] payment fetch failed payment_id=%s err=%v", n.PaymentID, err)
		return ErrPaymentFetch
	}
	log.Printf("[webhook][usecase] payment fetched payment_id=%s status=%s detail=%s type=%s method=%s",
		rec.ID, rec.Status, rec.StatusDetail, rec.PaymentTypeID, rec.PaymentMethodID)

	if rec.Status != entities.PaymentStatusApproved {
		log.Printf("[webhook][usecase] payment not approved payment_id=%s status=%s; nothing to activate", rec.ID, rec.Status)
		return nil
	}

	if u.activations == nil {
		log.Printf("[webhook][usecase] activation store not configured payment_id=%s", rec.ID)
		return errors.New("activation repository not configured")
	}

	created, err := u.activations.Activate(ctx, entities.ProfileActivation{
		PaymentID:         rec.ID,
		ExternalReference: rec.ExternalReference,
		Status:            rec.Status,
		StatusDetail:      rec.StatusDetail,
		PaymentTypeID:     rec.PaymentTypeID,
		PaymentMethodID:   rec.PaymentMethodID,
		Amount:            rec.Amount,
		ActivatedAt:       time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[webhook][usecase] activation failed payment_id=%s err=%v", rec.ID, err)
		return err
	}
	if !created {
		log.Printf("[webhook][usecase] duplicate delivery payment_id=%s; profile already activated", rec.ID)
		return nil
	}
	log.Printf("[webhook][usecase] profile activated payment_id=%s external_reference=%s", rec.ID, rec.ExternalReference)
	return nil
}
