package interfaces

import (
	"context"

	"chamba_facil/internal/domain/entities"
)

// IActivationRepository abstracts the profile-activation store.
//
// Activate must be idempotent per payment id: created is false when an
// activation for the same payment already exists, so redelivered webhooks
// apply the side effect exactly once.
type IActivationRepository interface {
	Activate(ctx context.Context, a entities.ProfileActivation) (created bool, err error)
	GetByPaymentID(ctx context.Context, paymentID string) (entities.ProfileActivation, error)
}
