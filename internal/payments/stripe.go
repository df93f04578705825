package payments

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	pawmart_errors "pawmart/pkg/errors"
)

// StripeGateway implements Gateway on top of the Stripe API.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	successURL    string
	cancelURL     string
	currency      string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
	Currency      string
}

func NewStripeGateway(cfg StripeConfig) *StripeGateway {
	g := &StripeGateway{
		webhookSecret: cfg.WebhookSecret,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
		currency:      cfg.Currency,
	}
	if cfg.SecretKey != "" {
		g.api = &client.API{}
		g.api.Init(cfg.SecretKey, nil)
	}
	return g
}

func (g *StripeGateway) Configured() bool {
	return g.api != nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (CheckoutSession, error) {
	if g.api == nil {
		return CheckoutSession{}, pawmart_errors.ErrServiceUnavailable
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(params.Items))
	for _, item := range params.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(g.currency),
				UnitAmount: stripe.Int64(toMinorUnits(item.Price)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
			},
		})
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Params:     stripe.Params{Context: ctx},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.successURL),
		CancelURL:  stripe.String(g.cancelURL),
		LineItems:  lineItems,
	}
	if params.CustomerEmail != "" {
		sessionParams.CustomerEmail = stripe.String(params.CustomerEmail)
	}
	sessionParams.AddMetadata("order_id", params.OrderID.String())
	sessionParams.AddMetadata("user_id", params.UserID.String())
	if params.ShippingAddress != "" {
		sessionParams.AddMetadata("shipping_address", params.ShippingAddress)
	}

	sess, err := g.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return CheckoutSession{}, fmt.Errorf("create checkout session: %w", err)
	}
	return CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func (g *StripeGateway) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	ev, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return Event{}, fmt.Errorf("%w: %v", pawmart_errors.ErrSignatureInvalid, err)
	}
	return Event{
		ID:     ev.ID,
		Type:   string(ev.Type),
		Object: ev.Data.Raw,
	}, nil
}

func (g *StripeGateway) GetSessionDetails(ctx context.Context, sessionID string) (SessionDetails, error) {
	if g.api == nil {
		return SessionDetails{}, pawmart_errors.ErrServiceUnavailable
	}
	sess, err := g.api.CheckoutSessions.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return SessionDetails{}, fmt.Errorf("get checkout session: %w", err)
	}
	return SessionDetails{
		PaymentStatus: string(sess.PaymentStatus),
		Metadata:      sess.Metadata,
	}, nil
}

// toMinorUnits converts a decimal price to the gateway's integer minor units
// (cents). Prices are stored with two decimal places.
func toMinorUnits(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
