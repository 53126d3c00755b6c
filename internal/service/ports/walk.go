package ports

import (
	"context"

	"github.com/velikanov/walkbooker/internal/domain"
)

type WalkRepo interface {
	Create(ctx context.Context, w *domain.Walk) error
	GetByID(ctx context.Context, id string) (*domain.Walk, error)
	List(ctx context.Context) ([]*domain.Walk, error)
	Publish(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, walkID string, partySize int) (bool, error)
	ResetSeats(ctx context.Context, walkID string) error
	ReconcileAll(ctx context.Context) (domain.ReconcileReport, error)
}
