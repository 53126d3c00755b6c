package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/velikanov/walkbooker/internal/domain"
	"github.com/velikanov/walkbooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type WalkService struct {
	repo            ports.WalkRepo
	reservationRepo ports.ReservationRepo
	alerter         ports.OperatorAlerter
	logger          logger.Logger
}

func NewWalkService(
	repo ports.WalkRepo,
	reservationRepo ports.ReservationRepo,
	alerter ports.OperatorAlerter,
	logger logger.Logger,
) *WalkService {
	return &WalkService{
		repo:            repo,
		reservationRepo: reservationRepo,
		alerter:         alerter,
		logger:          logger,
	}
}

func (s *WalkService) CreateWalk(ctx context.Context, input domain.CreateWalkInput) (*domain.Walk, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.TotalSeats <= 0 {
		return nil, fmt.Errorf("%w: total_seats must be positive", domain.ErrValidation)
	}
	if input.WalkDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: walk_date must be in the future", domain.ErrValidation)
	}
	if input.Kind != domain.WalkKindPaid && input.Kind != domain.WalkKindInvite {
		return nil, fmt.Errorf("%w: kind must be paid or invite", domain.ErrValidation)
	}
	if input.Kind == domain.WalkKindPaid && input.PriceCents <= 0 {
		return nil, fmt.Errorf("%w: paid walk needs a positive price", domain.ErrValidation)
	}

	price := input.PriceCents
	if input.Kind == domain.WalkKindInvite {
		price = 0
	}

	walk := &domain.Walk{
		ID:             uuid.New().String(),
		Title:          input.Title,
		Theme:          input.Theme,
		Location:       input.Location,
		WalkDate:       input.WalkDate,
		TotalSeats:     input.TotalSeats,
		AvailableSeats: input.TotalSeats,
		PriceCents:     price,
		Currency:       input.Currency,
		Kind:           input.Kind,
		Status:         domain.WalkStatusDraft,
	}

	if err := s.repo.Create(ctx, walk); err != nil {
		return nil, fmt.Errorf("create walk: %w", err)
	}

	return walk, nil
}

func (s *WalkService) Publish(ctx context.Context, id string) error {
	if err := s.repo.Publish(ctx, id); err != nil {
		return fmt.Errorf("publish walk: %w", err)
	}

	s.logger.Info("walk published", logger.String("walk_id", id))
	return nil
}

func (s *WalkService) GetByID(ctx context.Context, id string) (*domain.Walk, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *WalkService) GetDetails(ctx context.Context, id string) (*domain.WalkDetails, error) {
	walk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reservations, err := s.reservationRepo.ListByWalk(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	details := &domain.WalkDetails{
		Walk:         *walk,
		Reservations: make([]domain.Reservation, len(reservations)),
	}
	for i, r := range reservations {
		details.Reservations[i] = *r
	}

	return details, nil
}

func (s *WalkService) List(ctx context.Context) ([]*domain.Walk, error) {
	return s.repo.List(ctx)
}

func (s *WalkService) ResetSeats(ctx context.Context, id string) error {
	if err := s.repo.ResetSeats(ctx, id); err != nil {
		return fmt.Errorf("reset seats: %w", err)
	}

	s.logger.Info("seats reset to initial capacity", logger.String("walk_id", id))
	return nil
}

// Reconcile runs the drift correction job: stored availability is rewritten
// from the confirmed ledger for every walk that drifted. Safe to run at any
// time, including next to live traffic.
func (s *WalkService) Reconcile(ctx context.Context) (domain.ReconcileReport, error) {
	report, err := s.repo.ReconcileAll(ctx)
	if err != nil {
		return report, fmt.Errorf("reconcile walks: %w", err)
	}

	if report.WalksRepaired > 0 {
		s.logger.Warn("seat drift repaired",
			logger.Int("walks_repaired", report.WalksRepaired),
			logger.Int("seats_adjusted", report.SeatsAdjusted),
		)

		if report.Oversold > 0 {
			s.logger.Error("confirmed seats exceed total capacity",
				logger.Int("oversold_walks", report.Oversold),
			)
		}

		go s.alerter.AlertDriftRepaired(context.WithoutCancel(ctx), report)
	}

	return report, nil
}
