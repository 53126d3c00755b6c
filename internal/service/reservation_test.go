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
	"github.com/velikanov/walkbooker/internal/service/ports"
	"github.com/velikanov/walkbooker/internal/service/ports/mocks"
)

func newReservationService(t *testing.T) (*ReservationService, *mocks.MockReservationRepo, *mocks.MockWalkRepo, *mocks.MockPaymentProvider, *mocks.MockGuestNotifier) {
	reservationRepo := mocks.NewMockReservationRepo(t)
	walkRepo := mocks.NewMockWalkRepo(t)
	payments := mocks.NewMockPaymentProvider(t)
	notifier := mocks.NewMockGuestNotifier(t)
	svc := NewReservationService(reservationRepo, walkRepo, payments, notifier, newTestLogger(t))
	return svc, reservationRepo, walkRepo, payments, notifier
}

func bookableWalk() *domain.Walk {
	return &domain.Walk{
		ID:             "w1",
		Title:          "Harbour Walk",
		WalkDate:       time.Now().Add(48 * time.Hour),
		TotalSeats:     5,
		AvailableSeats: 5,
		PriceCents:     2000,
		Currency:       "eur",
		Kind:           domain.WalkKindPaid,
		Status:         domain.WalkStatusPublished,
	}
}

func TestReservationService_CreatePaid(t *testing.T) {
	svc, reservationRepo, walkRepo, payments, _ := newReservationService(t)

	walk := bookableWalk()

	walkRepo.EXPECT().GetByID(mock.Anything, "w1").Return(walk, nil)
	walkRepo.EXPECT().CheckAvailability(mock.Anything, "w1", 3).Return(true, nil)
	reservationRepo.EXPECT().CreatePending(mock.Anything, mock.Anything).Return(nil)
	payments.EXPECT().CreateIntent(mock.Anything, mock.Anything).Return(&domain.PaymentIntent{
		Reference:    "pi_123",
		ClientSecret: "pi_123_secret",
	}, nil)
	reservationRepo.EXPECT().AttachExternalRef(mock.Anything, mock.Anything, "pi_123").Return(nil)

	res, secret, err := svc.CreatePaid(context.Background(), "w1", domain.CreateReservationInput{
		HolderName:  "Alice",
		HolderEmail: "alice@example.com",
		PartySize:   3,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusPending, res.Status)
	assert.Equal(t, int64(6000), res.AmountCents) // 3 * 2000
	assert.Equal(t, "pi_123_secret", secret)
	require.NotNil(t, res.ExternalRef)
	assert.Equal(t, "pi_123", *res.ExternalRef)
}

func TestReservationService_CreatePaid_PassesAmountToGateway(t *testing.T) {
	svc, reservationRepo, walkRepo, payments, _ := newReservationService(t)

	walkRepo.EXPECT().GetByID(mock.Anything, "w1").Return(bookableWalk(), nil)
	walkRepo.EXPECT().CheckAvailability(mock.Anything, "w1", 2).Return(true, nil)
	reservationRepo.EXPECT().CreatePending(mock.Anything, mock.Anything).Return(nil)

	var captured ports.CreateIntentInput
	payments.EXPECT().CreateIntent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, in ports.CreateIntentInput) {
			captured = in
		}).
		Return(&domain.PaymentIntent{Reference: "pi_9", ClientSecret: "s"}, nil)
	reservationRepo.EXPECT().AttachExternalRef(mock.Anything, mock.Anything, "pi_9").Return(nil)

	_, _, err := svc.CreatePaid(context.Background(), "w1", domain.CreateReservationInput{
		HolderName:  "Bob",
		HolderEmail: "bob@example.com",
		PartySize:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4000), captured.AmountCents)
	assert.Equal(t, "eur", captured.Currency)
	assert.Equal(t, 2, captured.PartySize)
}

func TestReservationService_CreatePaid_InviteOnlyWalk(t *testing.T) {
	svc, _, walkRepo, _, _ := newReservationService(t)

	walk := bookableWalk()
	walk.Kind = domain.WalkKindInvite

	walkRepo.EXPECT().GetByID(mock.Anything, "w1").Return(walk, nil)

	_, _, err := svc.CreatePaid(context.Background(), "w1", domain.CreateReservationInput{
		HolderName:  "Alice",
		HolderEmail: "alice@example.com",
		PartySize:   1,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_CreatePaid_UnpublishedWalk(t *testing.T) {
	svc, _, walkRepo, _, _ := newReservationService(t)

	walk := bookableWalk()
	walk.Status = domain.WalkStatusDraft

	walkRepo.EXPECT().GetByID(mock.Anything, "w1").Return(walk, nil)

	_, _, err := svc.CreatePaid(context.Background(), "w1", domain.CreateReservationInput{
		HolderName:  "Alice",
		HolderEmail: "alice@example.com",
		PartySize:   1,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_CreatePaid_InsufficientCapacity(t *testing.T) {
	svc, _, walkRepo, _, _ := newReservationService(t)

	walk := bookableWalk()
	walk.AvailableSeats = 2

	walkRepo.EXPECT().GetByID(mock.Anything, "w1").Return(walk, nil)
	walkRepo.EXPECT().CheckAvailability(mock.Anything, "w1", 3).Return(false, nil)

	_, _, err := svc.CreatePaid(context.Background(), "w1", domain.CreateReservationInput{
		HolderName:  "Bob",
		HolderEmail: "bob@example.com",
		PartySize:   3,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
}

func TestReservationService_CreatePaid_Validation(t *testing.T) {
	svc, _, _, _, _ := newReservationService(t)

	_, _, err := svc.CreatePaid(context.Background(), "w1", domain.CreateReservationInput{
		HolderName: "Alice",
		PartySize:  1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, err = svc.CreatePaid(context.Background(), "w1", domain.CreateReservationInput{
		HolderName:  "Alice",
		HolderEmail: "alice@example.com",
		PartySize:   0,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Confirm(t *testing.T) {
	svc, reservationRepo, walkRepo, _, notifier := newReservationService(t)

	confirmedAt := time.Now()
	res := &domain.Reservation{
		ID:          "r1",
		WalkID:      "w1",
		HolderEmail: "alice@example.com",
		PartySize:   3,
		Status:      domain.ReservationStatusConfirmed,
		ConfirmedAt: &confirmedAt,
	}
	walk := bookableWalk()

	reservationRepo.EXPECT().Confirm(mock.Anything, "r1").Return(res, nil)
	walkRepo.EXPECT().GetByID(mock.Anything, "w1").Return(walk, nil)
	notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, res, walk).Return()

	got, err := svc.Confirm(context.Background(), "r1", domain.SourceManual)

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, got.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Confirm_AlreadyConfirmed(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	reservationRepo.EXPECT().Confirm(mock.Anything, "r1").Return(nil, domain.ErrAlreadyConfirmed)

	_, err := svc.Confirm(context.Background(), "r1", domain.SourceManual)

	assert.ErrorIs(t, err, domain.ErrAlreadyConfirmed)
}

func TestReservationService_Confirm_InsufficientCapacity(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	reservationRepo.EXPECT().Confirm(mock.Anything, "r1").Return(nil, domain.ErrInsufficientCapacity)

	_, err := svc.Confirm(context.Background(), "r1", domain.SourceWebhook)

	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
}

// Two pending parties of 3 against 5 seats: the first confirm commits its
// seats, the second hits the capacity guard and stays pending, and a
// redelivery of the first party's payment event is a no-op.
func TestReservationService_Confirm_SecondPartyExceedsCapacity(t *testing.T) {
	svc, reservationRepo, walkRepo, _, notifier := newReservationService(t)

	walk := bookableWalk() // 5 seats
	confirmedA := &domain.Reservation{ID: "rA", WalkID: "w1", PartySize: 3, Status: domain.ReservationStatusConfirmed}

	reservationRepo.EXPECT().Confirm(mock.Anything, "rA").Return(confirmedA, nil).Once()
	walkRepo.EXPECT().GetByID(mock.Anything, "w1").Return(walk, nil).Once()
	notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, confirmedA, walk).Return().Once()

	got, err := svc.Confirm(context.Background(), "rA", domain.SourceWebhook)
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, got.Status)

	// 2 seats left, party B of 3 cannot commit
	reservationRepo.EXPECT().Confirm(mock.Anything, "rB").Return(nil, domain.ErrInsufficientCapacity).Once()

	_, err = svc.Confirm(context.Background(), "rB", domain.SourceWebhook)
	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)

	// gateway redelivers A's succeeded event, still answered without error
	reservationRepo.EXPECT().GetByExternalRef(mock.Anything, "pi_A").Return(confirmedA, nil).Once()
	reservationRepo.EXPECT().Confirm(mock.Anything, "rA").Return(nil, domain.ErrAlreadyConfirmed).Once()

	err = svc.HandlePaymentEvent(context.Background(), domain.PaymentEvent{
		Type:      domain.PaymentEventSucceeded,
		Reference: "pi_A",
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_HandlePaymentEvent_InsufficientCapacity(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	pending := &domain.Reservation{ID: "rB", WalkID: "w1", PartySize: 3, Status: domain.ReservationStatusPending}

	reservationRepo.EXPECT().GetByExternalRef(mock.Anything, "pi_B").Return(pending, nil)
	reservationRepo.EXPECT().Confirm(mock.Anything, "rB").Return(nil, domain.ErrInsufficientCapacity)

	err := svc.HandlePaymentEvent(context.Background(), domain.PaymentEvent{
		Type:      domain.PaymentEventSucceeded,
		Reference: "pi_B",
	})

	// capacity conflicts propagate so the webhook answers non-2xx
	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
}

func TestReservationService_Confirm_NotifyFailureIsNotFatal(t *testing.T) {
	svc, reservationRepo, walkRepo, _, _ := newReservationService(t)

	res := &domain.Reservation{ID: "r1", WalkID: "w1", Status: domain.ReservationStatusConfirmed}

	reservationRepo.EXPECT().Confirm(mock.Anything, "r1").Return(res, nil)
	walkRepo.EXPECT().GetByID(mock.Anything, "w1").Return(nil, errors.New("db down"))

	got, err := svc.Confirm(context.Background(), "r1", domain.SourceWebhook)

	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
}

func TestReservationService_HandlePaymentEvent_Succeeded(t *testing.T) {
	svc, reservationRepo, walkRepo, _, notifier := newReservationService(t)

	pending := &domain.Reservation{ID: "r1", WalkID: "w1", Status: domain.ReservationStatusPending}
	confirmed := &domain.Reservation{ID: "r1", WalkID: "w1", Status: domain.ReservationStatusConfirmed}
	walk := bookableWalk()

	reservationRepo.EXPECT().GetByExternalRef(mock.Anything, "pi_123").Return(pending, nil)
	reservationRepo.EXPECT().Confirm(mock.Anything, "r1").Return(confirmed, nil)
	walkRepo.EXPECT().GetByID(mock.Anything, "w1").Return(walk, nil)
	notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, confirmed, walk).Return()

	err := svc.HandlePaymentEvent(context.Background(), domain.PaymentEvent{
		Type:      domain.PaymentEventSucceeded,
		Reference: "pi_123",
	})

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_HandlePaymentEvent_DuplicateDelivery(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	res := &domain.Reservation{ID: "r1", WalkID: "w1", Status: domain.ReservationStatusConfirmed}

	reservationRepo.EXPECT().GetByExternalRef(mock.Anything, "pi_123").Return(res, nil)
	reservationRepo.EXPECT().Confirm(mock.Anything, "r1").Return(nil, domain.ErrAlreadyConfirmed)

	err := svc.HandlePaymentEvent(context.Background(), domain.PaymentEvent{
		Type:      domain.PaymentEventSucceeded,
		Reference: "pi_123",
	})

	require.NoError(t, err) // duplicate is a no-op, gateway must get 2xx
}

func TestReservationService_HandlePaymentEvent_UnknownReference(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	reservationRepo.EXPECT().GetByExternalRef(mock.Anything, "pi_ghost").Return(nil, domain.ErrReservationNotFound)

	err := svc.HandlePaymentEvent(context.Background(), domain.PaymentEvent{
		Type:      domain.PaymentEventSucceeded,
		Reference: "pi_ghost",
	})

	require.NoError(t, err)
}

func TestReservationService_HandlePaymentEvent_IgnoresFailure(t *testing.T) {
	svc, _, _, _, _ := newReservationService(t)

	err := svc.HandlePaymentEvent(context.Background(), domain.PaymentEvent{
		Type:      domain.PaymentEventFailed,
		Reference: "pi_123",
	})

	require.NoError(t, err)
}

func TestReservationService_Cancel(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	res := &domain.Reservation{ID: "r1", WalkID: "w1", Status: domain.ReservationStatusCancelled}

	reservationRepo.EXPECT().Cancel(mock.Anything, "r1").Return(res, nil)

	got, err := svc.Cancel(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, got.Status)
}

func TestReservationService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, reservationRepo, _, _, _ := newReservationService(t)

	reservationRepo.EXPECT().Cancel(mock.Anything, "r1").Return(nil, domain.ErrAlreadyCancelled)

	_, err := svc.Cancel(context.Background(), "r1")

	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}
