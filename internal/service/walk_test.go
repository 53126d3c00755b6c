package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/velikanov/walkbooker/internal/domain"
	"github.com/velikanov/walkbooker/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newWalkService(t *testing.T) (*WalkService, *mocks.MockWalkRepo, *mocks.MockReservationRepo, *mocks.MockOperatorAlerter) {
	walkRepo := mocks.NewMockWalkRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	alerter := mocks.NewMockOperatorAlerter(t)
	svc := NewWalkService(walkRepo, reservationRepo, alerter, newTestLogger(t))
	return svc, walkRepo, reservationRepo, alerter
}

func TestWalkService_CreateWalk_Paid(t *testing.T) {
	svc, walkRepo, _, _ := newWalkService(t)

	walkRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	walk, err := svc.CreateWalk(context.Background(), domain.CreateWalkInput{
		Title:      "Old Town at Dusk",
		Theme:      "architecture",
		Location:   "Riga",
		WalkDate:   time.Now().Add(72 * time.Hour),
		TotalSeats: 12,
		PriceCents: 2500,
		Currency:   "eur",
		Kind:       domain.WalkKindPaid,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, walk.ID)
	assert.Equal(t, domain.WalkStatusDraft, walk.Status)
	assert.Equal(t, 12, walk.TotalSeats)
	assert.Equal(t, 12, walk.AvailableSeats)
	assert.Equal(t, int64(2500), walk.PriceCents)
}

func TestWalkService_CreateWalk_InviteIgnoresPrice(t *testing.T) {
	svc, walkRepo, _, _ := newWalkService(t)

	walkRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	walk, err := svc.CreateWalk(context.Background(), domain.CreateWalkInput{
		Title:      "Members Only",
		WalkDate:   time.Now().Add(24 * time.Hour),
		TotalSeats: 8,
		PriceCents: 9900,
		Kind:       domain.WalkKindInvite,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), walk.PriceCents)
}

func TestWalkService_CreateWalk_Validation(t *testing.T) {
	svc, _, _, _ := newWalkService(t)

	future := time.Now().Add(24 * time.Hour)

	cases := []struct {
		name  string
		input domain.CreateWalkInput
	}{
		{"missing title", domain.CreateWalkInput{WalkDate: future, TotalSeats: 5, PriceCents: 100, Kind: domain.WalkKindPaid}},
		{"zero seats", domain.CreateWalkInput{Title: "x", WalkDate: future, TotalSeats: 0, PriceCents: 100, Kind: domain.WalkKindPaid}},
		{"past date", domain.CreateWalkInput{Title: "x", WalkDate: time.Now().Add(-time.Hour), TotalSeats: 5, PriceCents: 100, Kind: domain.WalkKindPaid}},
		{"unknown kind", domain.CreateWalkInput{Title: "x", WalkDate: future, TotalSeats: 5, PriceCents: 100, Kind: "raffle"}},
		{"paid without price", domain.CreateWalkInput{Title: "x", WalkDate: future, TotalSeats: 5, Kind: domain.WalkKindPaid}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateWalk(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestWalkService_GetDetails(t *testing.T) {
	svc, walkRepo, reservationRepo, _ := newWalkService(t)

	walk := &domain.Walk{ID: "w1", Title: "Harbour Walk", TotalSeats: 10, AvailableSeats: 7}
	reservations := []*domain.Reservation{
		{ID: "r1", WalkID: "w1", PartySize: 3, Status: domain.ReservationStatusConfirmed},
	}

	walkRepo.EXPECT().GetByID(mock.Anything, "w1").Return(walk, nil)
	reservationRepo.EXPECT().ListByWalk(mock.Anything, "w1").Return(reservations, nil)

	details, err := svc.GetDetails(context.Background(), "w1")

	require.NoError(t, err)
	assert.Equal(t, "w1", details.Walk.ID)
	require.Len(t, details.Reservations, 1)
	assert.Equal(t, "r1", details.Reservations[0].ID)
}

func TestWalkService_GetDetails_WalkNotFound(t *testing.T) {
	svc, walkRepo, _, _ := newWalkService(t)

	walkRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrWalkNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrWalkNotFound)
}

func TestWalkService_Reconcile_NoDrift(t *testing.T) {
	svc, walkRepo, _, _ := newWalkService(t)

	walkRepo.EXPECT().ReconcileAll(mock.Anything).Return(domain.ReconcileReport{}, nil)

	report, err := svc.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.WalksRepaired)
	// alerter must not be called, mock asserts no expectations
}

func TestWalkService_Reconcile_DriftAlertsOperator(t *testing.T) {
	svc, walkRepo, _, alerter := newWalkService(t)

	report := domain.ReconcileReport{WalksRepaired: 2, SeatsAdjusted: 5}

	walkRepo.EXPECT().ReconcileAll(mock.Anything).Return(report, nil)
	alerter.EXPECT().AlertDriftRepaired(mock.Anything, report).Return()

	got, err := svc.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, got.WalksRepaired)
	assert.Equal(t, 5, got.SeatsAdjusted)

	time.Sleep(50 * time.Millisecond) // goroutine alert
}

func TestWalkService_Reconcile_OversoldWalkReported(t *testing.T) {
	svc, walkRepo, _, alerter := newWalkService(t)

	// confirmed ledger above capacity: availability pinned at zero and the
	// oversell surfaced to the operator
	report := domain.ReconcileReport{WalksRepaired: 1, SeatsAdjusted: 4, Oversold: 1}

	walkRepo.EXPECT().ReconcileAll(mock.Anything).Return(report, nil)
	alerter.EXPECT().AlertDriftRepaired(mock.Anything, report).Return()

	got, err := svc.Reconcile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, got.Oversold)

	time.Sleep(50 * time.Millisecond) // goroutine alert
}

func TestWalkService_Reconcile_Error(t *testing.T) {
	svc, walkRepo, _, _ := newWalkService(t)

	walkRepo.EXPECT().ReconcileAll(mock.Anything).Return(domain.ReconcileReport{}, errors.New("db down"))

	_, err := svc.Reconcile(context.Background())

	require.Error(t, err)
}

func TestWalkService_ResetSeats(t *testing.T) {
	svc, walkRepo, _, _ := newWalkService(t)

	walkRepo.EXPECT().ResetSeats(mock.Anything, "w1").Return(nil)

	err := svc.ResetSeats(context.Background(), "w1")

	require.NoError(t, err)
}

func TestWalkService_Publish_NotFound(t *testing.T) {
	svc, walkRepo, _, _ := newWalkService(t)

	walkRepo.EXPECT().Publish(mock.Anything, "missing").Return(domain.ErrWalkNotFound)

	err := svc.Publish(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrWalkNotFound)
}
