package ports

import (
	"context"

	"github.com/velikanov/walkbooker/internal/domain"
)

// GuestNotifier delivers fire-and-forget mail to walk attendees. Failures
// are logged by the implementation, never returned.
type GuestNotifier interface {
	NotifyReservationConfirmed(ctx context.Context, res *domain.Reservation, walk *domain.Walk)
	NotifyInvitationIssued(ctx context.Context, inv *domain.Invitation, walk *domain.Walk)
}

// OperatorAlerter pings the operators channel about conditions that need a
// human: seat drift repairs and failed invitation issuance.
type OperatorAlerter interface {
	AlertDriftRepaired(ctx context.Context, report domain.ReconcileReport)
	AlertIssueFailed(ctx context.Context, walkID string, err error)
}
