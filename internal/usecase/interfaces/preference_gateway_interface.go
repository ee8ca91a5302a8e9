package interfaces

import (
	"context"

	"chamba_facil/internal/domain/entities"
)

// IPreferenceGateway abstracts the payment provider's preference-creation
// endpoint (Mercado Pago). Implementations normalize provider response shapes
// into CheckoutPreference at the adapter boundary.
type IPreferenceGateway interface {
	CreatePreference(ctx context.Context, order entities.PreferenceOrder) (entities.CheckoutPreference, error)
}
