package ports

import (
	"context"

	"github.com/velikanov/walkbooker/internal/domain"
)

type ReservationRepo interface {
	CreatePending(ctx context.Context, res *domain.Reservation) error
	AttachExternalRef(ctx context.Context, id, ref string) error
	Confirm(ctx context.Context, id string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByExternalRef(ctx context.Context, ref string) (*domain.Reservation, error)
	ListByWalk(ctx context.Context, walkID string) ([]*domain.Reservation, error)
}
