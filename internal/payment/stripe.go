package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"
	"github.com/velikanov/walkbooker/internal/domain"
	"github.com/velikanov/walkbooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// StripeProvider is the gateway adapter: it creates payment intents and
// turns verified webhook payloads into domain payment events. Card
// handling and signature crypto stay on Stripe's side.
type StripeProvider struct {
	webhookSecret string
	logger        logger.Logger
}

func NewStripeProvider(apiKey, webhookSecret string, logger logger.Logger) *StripeProvider {
	if apiKey == "" {
		logger.Warn("stripe api key is empty, paid reservations will fail at intent creation")
	}
	stripe.Key = apiKey

	return &StripeProvider{
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

func (p *StripeProvider) CreateIntent(ctx context.Context, in ports.CreateIntentInput) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(in.AmountCents),
		Currency: stripe.String(in.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("walk_id", in.WalkID)
	params.AddMetadata("holder_name", in.HolderName)
	params.AddMetadata("holder_email", in.HolderEmail)
	params.AddMetadata("party_size", strconv.Itoa(in.PartySize))

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("create stripe intent: %w", err)
	}

	return &domain.PaymentIntent{
		Reference:    pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

// ParseWebhook verifies the Stripe signature and maps the event to the
// domain payment event types. Event types outside the payment_intent
// family come back with an empty type and are dropped by the caller.
func (p *StripeProvider) ParseWebhook(payload []byte, sigHeader string) (*domain.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, p.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("verify webhook signature: %w", err)
	}

	var evType domain.PaymentEventType
	switch event.Type {
	case "payment_intent.succeeded":
		evType = domain.PaymentEventSucceeded
	case "payment_intent.payment_failed":
		evType = domain.PaymentEventFailed
	case "payment_intent.canceled":
		evType = domain.PaymentEventCanceled
	default:
		p.logger.Debug("unhandled stripe event type", logger.String("type", string(event.Type)))
		return &domain.PaymentEvent{}, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("decode payment intent payload: %w", err)
	}

	return &domain.PaymentEvent{
		Type:      evType,
		Reference: pi.ID,
	}, nil
}
