package entities

// TopicPayment is the only webhook topic this service acts on.
const TopicPayment = "payment"

// Payment statuses as reported by Mercado Pago.
const (
	PaymentStatusApproved = "approved"
	PaymentStatusPending  = "pending"
	PaymentStatusRejected = "rejected"
)

// Notification is a webhook event after extraction. It is a hint to re-fetch
// authoritative state, never the state itself: no status field is carried here
// on purpose, because the incoming payload is untrusted.
type Notification struct {
	Topic     string
	PaymentID string
}

// Verifiable reports whether the notification identifies a payment to fetch.
func (n Notification) Verifiable() bool {
	return n.Topic == TopicPayment && n.PaymentID != ""
}

// PaymentRecord is the authoritative payment state fetched from the provider
// with server-held credentials. Read-only to this service and fetched fresh
// per webhook; it may change between notifications, so it is never cached.
type PaymentRecord struct {
	ID                string
	Status            string
	StatusDetail      string
	PaymentTypeID     string
	PaymentMethodID   string
	ExternalReference string
	Amount            float64
}

// RedirectURLs is the back-url triple handed to the provider so it can send
// the buyer back to the site after checkout.
type RedirectURLs struct {
	Success string
	Failure string
	Pending string
}

// PreferenceOrder is the normalized checkout order submitted to the payment
// provider. The gateway adapter translates it to the provider schema exactly
// once, so handlers and use cases never touch provider types.
type PreferenceOrder struct {
	Title                string
	Description          string
	Quantity             int
	UnitPrice            float64
	CurrencyID           string
	ExternalReference    string
	BackURLs             RedirectURLs
	NotificationURL      string
	ExcludedPaymentTypes []string
	Installments         int
	StatementDescriptor  string
	BinaryMode           bool
	Metadata             map[string]any
}

// CheckoutPreference is the provider-assigned result of creating a preference.
// Ephemeral: returned to the caller, never stored.
type CheckoutPreference struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}
