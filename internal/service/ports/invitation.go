package ports

import (
	"context"

	"github.com/velikanov/walkbooker/internal/domain"
)

type InvitationRepo interface {
	IssueBatch(ctx context.Context, walkID string, in domain.IssueInvitationsInput) ([]*domain.Invitation, error)
	GetByCode(ctx context.Context, code string) (*domain.Invitation, error)
	HasRedemption(ctx context.Context, walkID, email string) (bool, error)
	Redeem(ctx context.Context, code, holderName string) (*domain.Invitation, *domain.Reservation, error)
	Expire(ctx context.Context, id string) error
}
