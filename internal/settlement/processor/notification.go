package processor

// EventPaymentLinkPaid is the only provider event kind that drives
// settlement. Every other kind is acknowledged and ignored.
const EventPaymentLinkPaid = "payment_link.paid"

// WebhookEnvelope is the provider's wire shape. The nested payload is the
// provider's own quirk, preserved as-is.
type WebhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payload struct {
			PaymentLink struct {
				Entity PaymentLinkEntity `json:"entity"`
			} `json:"payment_link"`
			Payment struct {
				Entity PaymentEntity `json:"entity"`
			} `json:"payment"`
		} `json:"payload"`
	} `json:"payload"`
}

// PaymentLinkEntity is the provider's payment-link object.
type PaymentLinkEntity struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Customer struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Contact string `json:"contact"`
	} `json:"customer"`
}

// PaymentEntity is the provider's captured-payment object.
type PaymentEntity struct {
	ID      string `json:"id"`
	Amount  int64  `json:"amount"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// PaymentNotification is the typed input to the settlement engine,
// extracted from a verified webhook envelope.
type PaymentNotification struct {
	PaymentLinkID     string
	ProviderPaymentID string
	Amount            int64
	Currency          string
	CustomerName      string
	CustomerEmail     string
}

// ToNotification flattens the envelope into the engine's input. Customer
// identity prefers the payment-link customer block and falls back to the
// captured payment's contact fields.
func (e WebhookEnvelope) ToNotification() PaymentNotification {
	link := e.Payload.Payload.PaymentLink.Entity
	payment := e.Payload.Payload.Payment.Entity

	email := link.Customer.Email
	if email == "" {
		email = payment.Email
	}

	return PaymentNotification{
		PaymentLinkID:     link.ID,
		ProviderPaymentID: payment.ID,
		Amount:            link.Amount,
		Currency:          link.Currency,
		CustomerName:      link.Customer.Name,
		CustomerEmail:     email,
	}
}
