package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/velikanov/walkbooker/internal/domain"
	"github.com/velikanov/walkbooker/internal/handler/dto"
	hmocks "github.com/velikanov/walkbooker/internal/handler/mocks"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockWalkSvc, *hmocks.MockReservationSvc, *hmocks.MockInvitationSvc, *hmocks.MockWebhookParser, http.Handler) {
	t.Helper()
	walkSvc := hmocks.NewMockWalkSvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)
	invitationSvc := hmocks.NewMockInvitationSvc(t)
	webhooks := hmocks.NewMockWebhookParser(t)

	h := NewHandler(walkSvc, reservationSvc, invitationSvc, webhooks)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/walks", h.ListWalks)
		api.GET("/walks/:id", h.GetWalk)
		api.POST("/walks", h.CreateWalk)
		api.POST("/walks/:id/publish", h.PublishWalk)
		api.POST("/walks/:id/reservations", h.CreateReservation)
		api.POST("/walks/:id/invitations", h.IssueInvitations)
		api.POST("/reservations/:id/confirm", h.ConfirmReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.POST("/invitations/redeem", h.RedeemInvitation)
		api.POST("/invitations/:id/expire", h.ExpireInvitation)
		api.POST("/webhooks/payment", h.PaymentWebhook)
		api.POST("/reconcile", h.Reconcile)
	}

	return walkSvc, reservationSvc, invitationSvc, webhooks, r
}

// --- Walks ---

func TestHandler_CreateWalk_Success(t *testing.T) {
	walkSvc, _, _, _, r := setupRouter(t)

	date := time.Now().Add(48 * time.Hour)
	walk := &domain.Walk{
		ID:             uuid.New().String(),
		Title:          "Old Town at Dusk",
		Location:       "Riga",
		WalkDate:       date,
		TotalSeats:     12,
		AvailableSeats: 12,
		PriceCents:     2500,
		Currency:       "eur",
		Kind:           domain.WalkKindPaid,
		Status:         domain.WalkStatusDraft,
		CreatedAt:      time.Now(),
	}

	walkSvc.EXPECT().CreateWalk(mock.Anything, mock.Anything).Return(walk, nil)

	body, _ := json.Marshal(dto.CreateWalkRequest{
		Title:      "Old Town at Dusk",
		Location:   "Riga",
		WalkDate:   date.Format(time.RFC3339),
		TotalSeats: 12,
		PriceCents: 2500,
		Currency:   "eur",
		Kind:       "paid",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/walks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.WalkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Old Town at Dusk", resp.Title)
}

func TestHandler_CreateWalk_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/walks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateWalk_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"title":"X","location":"Riga","walk_date":"not-a-date","total_seats":10,"kind":"paid"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/walks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetWalk_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/walks/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetWalk_NotFound(t *testing.T) {
	walkSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	walkSvc.EXPECT().GetDetails(mock.Anything, id).Return(nil, domain.ErrWalkNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/walks/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListWalks(t *testing.T) {
	walkSvc, _, _, _, r := setupRouter(t)

	walks := []*domain.Walk{
		{ID: uuid.New().String(), Title: "Harbour Walk", WalkDate: time.Now().Add(24 * time.Hour)},
		{ID: uuid.New().String(), Title: "Old Town at Dusk", WalkDate: time.Now().Add(48 * time.Hour)},
	}

	walkSvc.EXPECT().List(mock.Anything).Return(walks, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/walks", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.WalkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_Reconcile(t *testing.T) {
	walkSvc, _, _, _, r := setupRouter(t)

	walkSvc.EXPECT().Reconcile(mock.Anything).Return(domain.ReconcileReport{
		WalksRepaired: 1,
		SeatsAdjusted: 3,
		Oversold:      1,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reconcile", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReconcileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.WalksRepaired)
	assert.Equal(t, 3, resp.SeatsAdjusted)
	assert.Equal(t, 1, resp.Oversold)
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	walkID := uuid.New().String()
	res := &domain.Reservation{
		ID:     uuid.New().String(),
		WalkID: walkID,
		Status: domain.ReservationStatusPending,
	}

	reservationSvc.EXPECT().CreatePaid(mock.Anything, walkID, mock.Anything).Return(res, "pi_secret", nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		Name:      "Alice",
		Email:     "alice@example.com",
		PartySize: 3,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/walks/"+walkID+"/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreateReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, res.ID, resp.ReservationID)
	assert.Equal(t, "pi_secret", resp.ClientSecret)
}

func TestHandler_CreateReservation_InsufficientCapacity(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	walkID := uuid.New().String()

	reservationSvc.EXPECT().CreatePaid(mock.Anything, walkID, mock.Anything).
		Return(nil, "", domain.ErrInsufficientCapacity)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		Name:      "Bob",
		Email:     "bob@example.com",
		PartySize: 3,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/walks/"+walkID+"/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ConfirmReservation_Success(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	res := &domain.Reservation{ID: id, Status: domain.ReservationStatusConfirmed}

	reservationSvc.EXPECT().Confirm(mock.Anything, id, domain.SourceManual).Return(res, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ConfirmReservation_AlreadyConfirmed(t *testing.T) {
	_, reservationSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()

	reservationSvc.EXPECT().Confirm(mock.Anything, id, domain.SourceManual).
		Return(nil, domain.ErrAlreadyConfirmed)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+id+"/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelReservation_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/xyz/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Invitations ---

func TestHandler_IssueInvitations_Success(t *testing.T) {
	_, _, invitationSvc, _, r := setupRouter(t)

	walkID := uuid.New().String()
	issued := []*domain.Invitation{
		{ID: uuid.New().String(), WalkID: walkID, Code: "AAAA2222", Email: "alice@example.com", PartySize: 2, Status: domain.InvitationStatusIssued},
	}

	invitationSvc.EXPECT().IssueBatch(mock.Anything, walkID, mock.Anything).Return(issued, nil)

	body, _ := json.Marshal(dto.IssueInvitationsRequest{
		Emails:    []string{"alice@example.com"},
		PartySize: 2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/walks/"+walkID+"/invitations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp []dto.InvitationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "AAAA2222", resp[0].Code)
}

func TestHandler_IssueInvitations_BadEmail(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	walkID := uuid.New().String()
	body := []byte(`{"emails":["not-an-email"],"party_size":1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/walks/"+walkID+"/invitations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RedeemInvitation_Success(t *testing.T) {
	_, _, invitationSvc, _, r := setupRouter(t)

	res := &domain.Reservation{ID: uuid.New().String(), Status: domain.ReservationStatusConfirmed}

	invitationSvc.EXPECT().Redeem(mock.Anything, "ABCD2345", "alice@example.com", "Alice").Return(res, nil)

	body, _ := json.Marshal(dto.RedeemInvitationRequest{
		Code:  "ABCD2345",
		Email: "alice@example.com",
		Name:  "Alice",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/invitations/redeem", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RedeemInvitationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, res.ID, resp.ReservationID)
}

func TestHandler_RedeemInvitation_EmailMismatch(t *testing.T) {
	_, _, invitationSvc, _, r := setupRouter(t)

	invitationSvc.EXPECT().Redeem(mock.Anything, "ABCD2345", "mallory@example.com", "").
		Return(nil, domain.ErrEmailMismatch)

	body, _ := json.Marshal(dto.RedeemInvitationRequest{
		Code:  "ABCD2345",
		Email: "mallory@example.com",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/invitations/redeem", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RedeemInvitation_AlreadyRedeemed(t *testing.T) {
	_, _, invitationSvc, _, r := setupRouter(t)

	invitationSvc.EXPECT().Redeem(mock.Anything, "ABCD2345", "alice@example.com", "").
		Return(nil, domain.ErrAlreadyRedeemed)

	body, _ := json.Marshal(dto.RedeemInvitationRequest{
		Code:  "ABCD2345",
		Email: "alice@example.com",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/invitations/redeem", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Webhook ---

func TestHandler_PaymentWebhook_Succeeded(t *testing.T) {
	_, reservationSvc, _, webhooks, r := setupRouter(t)

	payload := []byte(`{"id":"evt_1"}`)
	ev := &domain.PaymentEvent{Type: domain.PaymentEventSucceeded, Reference: "pi_123"}

	webhooks.EXPECT().ParseWebhook(payload, "sig").Return(ev, nil)
	reservationSvc.EXPECT().HandlePaymentEvent(mock.Anything, *ev).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payment", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", "sig")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PaymentWebhook_IgnoredEvent(t *testing.T) {
	_, _, _, webhooks, r := setupRouter(t)

	payload := []byte(`{"id":"evt_2"}`)

	webhooks.EXPECT().ParseWebhook(payload, "sig").Return(&domain.PaymentEvent{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payment", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", "sig")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PaymentWebhook_CapacityConflict(t *testing.T) {
	_, reservationSvc, _, webhooks, r := setupRouter(t)

	payload := []byte(`{"id":"evt_4"}`)
	ev := &domain.PaymentEvent{Type: domain.PaymentEventSucceeded, Reference: "pi_full"}

	webhooks.EXPECT().ParseWebhook(payload, "sig").Return(ev, nil)
	reservationSvc.EXPECT().HandlePaymentEvent(mock.Anything, *ev).Return(domain.ErrInsufficientCapacity)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payment", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", "sig")
	r.ServeHTTP(w, req)

	// non-2xx keeps the gateway retrying until seats free up or the
	// reservation is cancelled
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_PaymentWebhook_BadSignature(t *testing.T) {
	_, _, _, webhooks, r := setupRouter(t)

	payload := []byte(`{"id":"evt_3"}`)

	webhooks.EXPECT().ParseWebhook(payload, "bad").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payment", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", "bad")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
