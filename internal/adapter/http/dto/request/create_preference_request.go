package request

import "strings"

// CreatePreferenceRequest is the checkout payload. Both fields are optional:
// an absent or unknown plan resolves to the configured default plan, and an
// absent name falls back to the plan title. The amount is never part of this
// payload; it is always computed server-side from the catalog.
type CreatePreferenceRequest struct {
	Plan string `json:"plan"`
	Name string `json:"name"`
}

func (r CreatePreferenceRequest) ResolvePlan() string {
	return strings.TrimSpace(r.Plan)
}

func (r CreatePreferenceRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}
