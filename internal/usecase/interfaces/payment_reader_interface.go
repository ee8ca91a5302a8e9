package interfaces

import (
	"context"

	"chamba_facil/internal/domain/entities"
)

// IPaymentReader abstracts the provider's payment-record read endpoint.
//
// Webhook notifications are only a cue to call this with server-held
// credentials; the fetched record is the sole authority on payment status.
type IPaymentReader interface {
	GetPayment(ctx context.Context, id string) (entities.PaymentRecord, error)
}
