package response

import "chamba_facil/internal/domain/entities"

// PreferenceResponse mirrors the JSON contract consumed by the checkout page:
// the preference id plus the live and sandbox redirect targets.
type PreferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

func FromCheckoutPreference(p entities.CheckoutPreference) PreferenceResponse {
	return PreferenceResponse{
		ID:               p.ID,
		InitPoint:        p.InitPoint,
		SandboxInitPoint: p.SandboxInitPoint,
	}
}
