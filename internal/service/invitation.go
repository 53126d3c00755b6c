package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/velikanov/walkbooker/internal/domain"
	"github.com/velikanov/walkbooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type InvitationService struct {
	invitationRepo ports.InvitationRepo
	walkRepo       ports.WalkRepo
	notifier       ports.GuestNotifier
	alerter        ports.OperatorAlerter
	logger         logger.Logger
}

func NewInvitationService(
	invitationRepo ports.InvitationRepo,
	walkRepo ports.WalkRepo,
	notifier ports.GuestNotifier,
	alerter ports.OperatorAlerter,
	logger logger.Logger,
) *InvitationService {
	return &InvitationService{
		invitationRepo: invitationRepo,
		walkRepo:       walkRepo,
		notifier:       notifier,
		alerter:        alerter,
		logger:         logger,
	}
}

// IssueBatch creates one issued invitation per recipient email. Seats are
// not decremented at issuance, mirroring paid reservations: only redemption
// commits seats, and the redemption path re-checks capacity.
func (s *InvitationService) IssueBatch(ctx context.Context, walkID string, in domain.IssueInvitationsInput) ([]*domain.Invitation, error) {
	if len(in.Emails) == 0 {
		return nil, fmt.Errorf("%w: at least one email is required", domain.ErrValidation)
	}
	if in.PartySize < 1 {
		return nil, fmt.Errorf("%w: party_size must be at least 1", domain.ErrValidation)
	}

	walk, err := s.walkRepo.GetByID(ctx, walkID)
	if err != nil {
		return nil, fmt.Errorf("check walk: %w", err)
	}
	if walk.Kind != domain.WalkKindInvite {
		return nil, domain.ErrNotInvitationWalk
	}

	invitations, err := s.invitationRepo.IssueBatch(ctx, walkID, in)
	if err != nil {
		if errors.Is(err, domain.ErrCodeGenerationExhausted) {
			s.logger.Error("invitation code generation exhausted",
				logger.String("walk_id", walkID),
				logger.Int("batch_size", len(in.Emails)),
			)
			go s.alerter.AlertIssueFailed(context.WithoutCancel(ctx), walkID, err)
		}
		return nil, err
	}

	s.logger.Info("invitations issued",
		logger.String("walk_id", walkID),
		logger.Int("count", len(invitations)),
	)

	go s.notifyIssued(context.WithoutCancel(ctx), invitations, walk)

	return invitations, nil
}

func (s *InvitationService) notifyIssued(ctx context.Context, invitations []*domain.Invitation, walk *domain.Walk) {
	for _, inv := range invitations {
		s.notifier.NotifyInvitationIssued(ctx, inv, walk)
	}
}

// Redeem validates the code against the presented email and, when valid,
// runs the atomic redemption: invitation flip, seat commit and confirmed
// reservation in one unit. The pre-checks here give specific answers while
// the transaction re-checks state under lock, so a race between two
// redemptions can never double-commit.
func (s *InvitationService) Redeem(ctx context.Context, code, email, holderName string) (*domain.Reservation, error) {
	if code == "" || email == "" {
		return nil, fmt.Errorf("%w: code and email are required", domain.ErrValidation)
	}

	inv, err := s.invitationRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(inv.Email, strings.TrimSpace(email)) {
		return nil, domain.ErrEmailMismatch
	}

	switch inv.Status {
	case domain.InvitationStatusRedeemed:
		return nil, domain.ErrAlreadyRedeemed
	case domain.InvitationStatusExpired:
		return nil, domain.ErrInvitationExpired
	}

	// Guard against a second booking through another invite for the same
	// walk and email.
	redeemed, err := s.invitationRepo.HasRedemption(ctx, inv.WalkID, inv.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing redemption: %w", err)
	}
	if redeemed {
		return nil, domain.ErrAlreadyRedeemed
	}

	ok, err := s.walkRepo.CheckAvailability(ctx, inv.WalkID, inv.PartySize)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if !ok {
		return nil, domain.ErrInsufficientCapacity
	}

	if holderName == "" {
		holderName = inv.Email
	}

	inv, res, err := s.invitationRepo.Redeem(ctx, inv.Code, holderName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("invitation redeemed",
		logger.String("invitation_id", inv.ID),
		logger.String("walk_id", inv.WalkID),
		logger.String("reservation_id", res.ID),
		logger.Int("party_size", inv.PartySize),
	)

	walk, err := s.walkRepo.GetByID(ctx, inv.WalkID)
	if err != nil {
		s.logger.Error("failed to get walk for notification",
			logger.String("walk_id", inv.WalkID),
			logger.String("error", err.Error()),
		)
		return res, nil
	}

	go s.notifier.NotifyReservationConfirmed(context.WithoutCancel(ctx), res, walk)

	return res, nil
}

func (s *InvitationService) Expire(ctx context.Context, id string) error {
	if err := s.invitationRepo.Expire(ctx, id); err != nil {
		return err
	}

	s.logger.Info("invitation expired by operator", logger.String("invitation_id", id))
	return nil
}
