package entities

import "time"

// ProfileActivation records that a profile was activated for an approved
// payment.
//
// Storage model (DynamoDB):
//   - PK: payment_id
//
// The payment id is the primary key on purpose: Mercado Pago redelivers the
// same notification many times, and a conditional put on payment_id is what
// makes the activation side effect happen exactly once per payment.

type ProfileActivation struct {
	PaymentID         string    `json:"payment_id"`
	ExternalReference string    `json:"external_reference,omitempty"`
	Status            string    `json:"status"`
	StatusDetail      string    `json:"status_detail,omitempty"`
	PaymentTypeID     string    `json:"payment_type_id,omitempty"`
	PaymentMethodID   string    `json:"payment_method_id,omitempty"`
	Amount            float64   `json:"amount,omitempty"`
	ActivatedAt       time.Time `json:"activated_at"`
}
