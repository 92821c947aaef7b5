package domain

import "encoding/json"

// Provider event types the webhook cares about.
const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
)

// WebhookEvent is a verified provider envelope. Object holds the raw nested
// data.object payload, decoded lazily by whoever handles the event type.
type WebhookEvent struct {
	ID     string
	Type   string
	Object json.RawMessage
}

// CheckoutSession is the subset of the provider's checkout session we read.
// ClientReferenceID carries the paying user's id through the payment flow.
type CheckoutSession struct {
	ID                string `json:"id"`
	ClientReferenceID string `json:"client_reference_id"`
	CustomerEmail     string `json:"customer_email,omitempty"`
	PaymentStatus     string `json:"payment_status,omitempty"`
}

// CheckoutSession decodes the event's object as a checkout session.
func (e *WebhookEvent) CheckoutSession() (*CheckoutSession, error) {
	var s CheckoutSession
	if len(e.Object) == 0 {
		return &s, nil
	}
	if err := json.Unmarshal(e.Object, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
