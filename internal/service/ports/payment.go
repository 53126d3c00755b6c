package ports

import (
	"context"

	"github.com/velikanov/walkbooker/internal/domain"
)

type CreateIntentInput struct {
	AmountCents int64
	Currency    string
	WalkID      string
	HolderName  string
	HolderEmail string
	PartySize   int
}

type PaymentProvider interface {
	CreateIntent(ctx context.Context, in CreateIntentInput) (*domain.PaymentIntent, error)
}
