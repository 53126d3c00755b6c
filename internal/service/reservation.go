package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/velikanov/walkbooker/internal/domain"
	"github.com/velikanov/walkbooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	walkRepo        ports.WalkRepo
	payments        ports.PaymentProvider
	notifier        ports.GuestNotifier
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	walkRepo ports.WalkRepo,
	payments ports.PaymentProvider,
	notifier ports.GuestNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		walkRepo:        walkRepo,
		payments:        payments,
		notifier:        notifier,
		logger:          logger,
	}
}

// CreatePaid starts a paid reservation: a pending row that holds no seats
// plus a payment intent at the gateway. If the payment is abandoned the row
// stays pending forever, which is harmless since capacity math only counts
// confirmed rows.
func (s *ReservationService) CreatePaid(ctx context.Context, walkID string, in domain.CreateReservationInput) (*domain.Reservation, string, error) {
	if in.HolderName == "" || in.HolderEmail == "" {
		return nil, "", fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}
	if in.PartySize < 1 {
		return nil, "", fmt.Errorf("%w: party_size must be at least 1", domain.ErrValidation)
	}

	walk, err := s.walkRepo.GetByID(ctx, walkID)
	if err != nil {
		return nil, "", fmt.Errorf("check walk: %w", err)
	}
	if walk.Kind == domain.WalkKindInvite {
		return nil, "", fmt.Errorf("%w: walk is invitation-only", domain.ErrValidation)
	}
	if !walk.IsBookable(time.Now()) {
		return nil, "", fmt.Errorf("%w: walk is not open for booking", domain.ErrValidation)
	}

	ok, err := s.walkRepo.CheckAvailability(ctx, walkID, in.PartySize)
	if err != nil {
		return nil, "", fmt.Errorf("check availability: %w", err)
	}
	if !ok {
		return nil, "", domain.ErrInsufficientCapacity
	}

	now := time.Now().UTC()
	res := &domain.Reservation{
		ID:          uuid.New().String(),
		WalkID:      walkID,
		HolderName:  in.HolderName,
		HolderEmail: in.HolderEmail,
		PartySize:   in.PartySize,
		AmountCents: walk.PriceCents * int64(in.PartySize),
		Status:      domain.ReservationStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.reservationRepo.CreatePending(ctx, res); err != nil {
		return nil, "", fmt.Errorf("create pending reservation: %w", err)
	}

	intent, err := s.payments.CreateIntent(ctx, ports.CreateIntentInput{
		AmountCents: res.AmountCents,
		Currency:    walk.Currency,
		WalkID:      walkID,
		HolderName:  in.HolderName,
		HolderEmail: in.HolderEmail,
		PartySize:   in.PartySize,
	})
	if err != nil {
		// Pending row without a ref stays inert, no cleanup needed.
		return nil, "", fmt.Errorf("create payment intent: %w", err)
	}

	if err = s.reservationRepo.AttachExternalRef(ctx, res.ID, intent.Reference); err != nil {
		return nil, "", fmt.Errorf("attach payment ref: %w", err)
	}
	res.ExternalRef = &intent.Reference

	s.logger.Info("pending reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("walk_id", walkID),
		logger.Int("party_size", in.PartySize),
	)

	return res, intent.ClientSecret, nil
}

// Confirm is the single entry point for all three confirmation triggers:
// payment webhook, manual operator action and invitation redemption (the
// latter through InvitationService, which ends in the same repository
// shape). Idempotent: a reservation already confirmed reports
// ErrAlreadyConfirmed and leaves the seat counter untouched.
func (s *ReservationService) Confirm(ctx context.Context, id string, source domain.ConfirmationSource) (*domain.Reservation, error) {
	res, err := s.reservationRepo.Confirm(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation confirmed",
		logger.String("reservation_id", res.ID),
		logger.String("walk_id", res.WalkID),
		logger.String("source", string(source)),
		logger.Int("party_size", res.PartySize),
	)

	walk, err := s.walkRepo.GetByID(ctx, res.WalkID)
	if err != nil {
		s.logger.Error("failed to get walk for notification",
			logger.String("walk_id", res.WalkID),
			logger.String("error", err.Error()),
		)
		return res, nil
	}

	go s.notifier.NotifyReservationConfirmed(context.WithoutCancel(ctx), res, walk)

	return res, nil
}

// HandlePaymentEvent consumes a verified gateway webhook. Duplicate
// deliveries and unknown references are no-ops: the gateway retries on
// non-2xx and there is nothing a retry would fix for either case.
func (s *ReservationService) HandlePaymentEvent(ctx context.Context, ev domain.PaymentEvent) error {
	if ev.Type != domain.PaymentEventSucceeded {
		s.logger.Info("ignoring payment event",
			logger.String("type", string(ev.Type)),
			logger.String("reference", ev.Reference),
		)
		return nil
	}

	res, err := s.reservationRepo.GetByExternalRef(ctx, ev.Reference)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			s.logger.Warn("payment event for unknown reference",
				logger.String("reference", ev.Reference),
			)
			return nil
		}
		return fmt.Errorf("correlate payment event: %w", err)
	}

	if _, err = s.Confirm(ctx, res.ID, domain.SourceWebhook); err != nil {
		if errors.Is(err, domain.ErrAlreadyConfirmed) {
			s.logger.Info("duplicate payment event, reservation already confirmed",
				logger.String("reservation_id", res.ID),
			)
			return nil
		}
		return fmt.Errorf("confirm from webhook: %w", err)
	}

	return nil
}

func (s *ReservationService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", res.ID),
		logger.String("walk_id", res.WalkID),
	)

	return res, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) ListByWalk(ctx context.Context, walkID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByWalk(ctx, walkID)
}
