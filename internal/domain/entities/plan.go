package entities

import "strings"

// Plan is a subscription plan sold through checkout.
//
// Monetary representation:
//   - PriceCents holds the price in minor MXN units to avoid float drift in
//     configuration. The checkout amount sent to the provider is derived with
//     Catalog.Amount.

type Plan struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
}

const (
	DefaultPlanID    = "annual"
	DefaultPlanTitle = "Inscripción anual Chamba Fácil"

	// CurrencyMXN is the only currency the marketplace charges in.
	CurrencyMXN = "MXN"
)

// Catalog maps plan ids to plans and resolves unknown ids to a default plan.
//
// The fallback is a deliberate permissiveness policy: a malformed plan id from
// the client degrades to the default plan instead of blocking checkout. The
// amount is always resolved server-side from this catalog, never taken from
// client input.
type Catalog struct {
	plans     map[string]Plan
	defaultID string
}

func NewCatalog(plans map[string]Plan, defaultID string) Catalog {
	if len(plans) == 0 {
		plans = map[string]Plan{
			DefaultPlanID: {ID: DefaultPlanID, Title: DefaultPlanTitle, PriceCents: 15000},
		}
	}
	defaultID = strings.TrimSpace(defaultID)
	if _, ok := plans[defaultID]; !ok {
		// Pick any deterministic member when the configured default is absent.
		defaultID = ""
		for id := range plans {
			if defaultID == "" || id < defaultID {
				defaultID = id
			}
		}
		if _, ok := plans[DefaultPlanID]; ok {
			defaultID = DefaultPlanID
		}
	}
	return Catalog{plans: plans, defaultID: defaultID}
}

// DefaultCatalog reproduces the production single-plan catalog.
func DefaultCatalog() Catalog {
	return NewCatalog(nil, DefaultPlanID)
}

// Resolve returns the plan for id, or the default plan when id is unknown.
func (c Catalog) Resolve(id string) Plan {
	if p, ok := c.plans[strings.TrimSpace(id)]; ok {
		return p
	}
	return c.plans[c.defaultID]
}

// PriceFor returns the price in minor units, falling back to the default plan.
func (c Catalog) PriceFor(id string) int64 {
	return c.Resolve(id).PriceCents
}

// Amount returns the checkout amount in major units (two decimals exact,
// since the stored price is an integer number of cents).
func (c Catalog) Amount(id string) float64 {
	return float64(c.PriceFor(id)) / 100
}

func (c Catalog) DefaultID() string {
	return c.defaultID
}
