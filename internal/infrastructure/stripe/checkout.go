package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// CheckoutConfig holds what is needed to send a user to payment.
type CheckoutConfig struct {
	SecretKey   string
	PriceID     string
	PaymentLink string
	FrontendURL string
}

// CheckoutCreator starts a Stripe Checkout Session tagged with the user's id.
// Without a price id it falls back to the configured payment link.
type CheckoutCreator struct {
	api *client.API
	cfg CheckoutConfig
}

func NewCheckoutCreator(cfg CheckoutConfig) *CheckoutCreator {
	cc := &CheckoutCreator{cfg: cfg}
	if cfg.SecretKey != "" && cfg.PriceID != "" {
		cc.api = &client.API{}
		cc.api.Init(cfg.SecretKey, nil)
	}
	return cc
}

// CreateCheckout returns the URL the client should redirect to.
func (c *CheckoutCreator) CreateCheckout(ctx context.Context, userID, email string) (string, error) {
	if c.api == nil {
		return c.paymentLink(userID)
	}

	frontendURL := strings.TrimRight(c.cfg.FrontendURL, "/")
	params := &stripego.CheckoutSessionParams{
		Mode:              stripego.String(string(stripego.CheckoutSessionModePayment)),
		ClientReferenceID: stripego.String(userID),
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{
				Price:    stripego.String(c.cfg.PriceID),
				Quantity: stripego.Int64(1),
			},
		},
		SuccessURL: stripego.String(frontendURL + "/?checkout=success"),
		CancelURL:  stripego.String(frontendURL + "/?checkout=cancel"),
	}
	if email != "" {
		params.CustomerEmail = stripego.String(email)
	}
	params.Context = ctx

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe checkout session: %w", err)
	}
	return sess.URL, nil
}

func (c *CheckoutCreator) paymentLink(userID string) (string, error) {
	if c.cfg.PaymentLink == "" {
		return "", errors.New("billing not configured")
	}
	u, err := url.Parse(c.cfg.PaymentLink)
	if err != nil {
		return "", fmt.Errorf("parse payment link: %w", err)
	}
	q := u.Query()
	q.Set("client_reference_id", userID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
