package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/velikanov/walkbooker/internal/domain"
	"github.com/velikanov/walkbooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type WalkSvc interface {
	CreateWalk(ctx context.Context, input domain.CreateWalkInput) (*domain.Walk, error)
	Publish(ctx context.Context, id string) error
	GetDetails(ctx context.Context, id string) (*domain.WalkDetails, error)
	List(ctx context.Context) ([]*domain.Walk, error)
	ResetSeats(ctx context.Context, id string) error
	Reconcile(ctx context.Context) (domain.ReconcileReport, error)
}

type ReservationSvc interface {
	CreatePaid(ctx context.Context, walkID string, in domain.CreateReservationInput) (*domain.Reservation, string, error)
	Confirm(ctx context.Context, id string, source domain.ConfirmationSource) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
	HandlePaymentEvent(ctx context.Context, ev domain.PaymentEvent) error
}

type InvitationSvc interface {
	IssueBatch(ctx context.Context, walkID string, in domain.IssueInvitationsInput) ([]*domain.Invitation, error)
	Redeem(ctx context.Context, code, email, holderName string) (*domain.Reservation, error)
	Expire(ctx context.Context, id string) error
}

// WebhookParser verifies a raw gateway payload and returns the payment
// event it carries, or an event with an empty type for irrelevant ones.
type WebhookParser interface {
	ParseWebhook(payload []byte, sigHeader string) (*domain.PaymentEvent, error)
}

type Handler struct {
	walkService        WalkSvc
	reservationService ReservationSvc
	invitationService  InvitationSvc
	webhooks           WebhookParser
}

func NewHandler(
	walkService WalkSvc,
	reservationService ReservationSvc,
	invitationService InvitationSvc,
	webhooks WebhookParser,
) *Handler {
	return &Handler{
		walkService:        walkService,
		reservationService: reservationService,
		invitationService:  invitationService,
		webhooks:           webhooks,
	}
}

// Walks

func (h *Handler) CreateWalk(c *ginext.Context) {
	var req dto.CreateWalkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	walkDate, err := time.Parse(time.RFC3339, req.WalkDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid walk_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateWalkInput{
		Title:      req.Title,
		Theme:      req.Theme,
		Location:   req.Location,
		WalkDate:   walkDate,
		TotalSeats: req.TotalSeats,
		PriceCents: req.PriceCents,
		Currency:   req.Currency,
		Kind:       domain.WalkKind(req.Kind),
	}

	walk, err := h.walkService.CreateWalk(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWalkResponse(walk))
}

func (h *Handler) PublishWalk(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid walk id"})
		return
	}

	if err := h.walkService.Publish(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "published"})
}

func (h *Handler) GetWalk(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid walk id"})
		return
	}

	details, err := h.walkService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWalkDetailsResponse(details))
}

func (h *Handler) ListWalks(c *ginext.Context) {
	walks, err := h.walkService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.WalkResponse, 0, len(walks))
	for _, w := range walks {
		resp = append(resp, dto.ToWalkResponse(w))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ResetSeats(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid walk id"})
		return
	}

	if err := h.walkService.ResetSeats(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "reset"})
}

func (h *Handler) Reconcile(c *ginext.Context) {
	report, err := h.walkService.Reconcile(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReconcileResponse{
		WalksRepaired: report.WalksRepaired,
		SeatsAdjusted: report.SeatsAdjusted,
		Oversold:      report.Oversold,
	})
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	walkID := c.Param("id")
	if _, err := uuid.Parse(walkID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid walk id"})
		return
	}

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, clientSecret, err := h.reservationService.CreatePaid(c.Request.Context(), walkID, domain.CreateReservationInput{
		HolderName:  req.Name,
		HolderEmail: req.Email,
		PartySize:   req.PartySize,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateReservationResponse{
		ReservationID: res.ID,
		ClientSecret:  clientSecret,
	})
}

func (h *Handler) ConfirmReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	res, err := h.reservationService.Confirm(c.Request.Context(), id, domain.SourceManual)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	res, err := h.reservationService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

// Invitations

func (h *Handler) IssueInvitations(c *ginext.Context) {
	walkID := c.Param("id")
	if _, err := uuid.Parse(walkID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid walk id"})
		return
	}

	var req dto.IssueInvitationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	invitations, err := h.invitationService.IssueBatch(c.Request.Context(), walkID, domain.IssueInvitationsInput{
		Emails:    req.Emails,
		PartySize: req.PartySize,
		Message:   req.Message,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		resp = append(resp, dto.ToInvitationResponse(inv))
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) RedeemInvitation(c *ginext.Context) {
	var req dto.RedeemInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.invitationService.Redeem(c.Request.Context(), req.Code, req.Email, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RedeemInvitationResponse{ReservationID: res.ID})
}

func (h *Handler) ExpireInvitation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid invitation id"})
		return
	}

	if err := h.invitationService.Expire(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "expired"})
}

// PaymentWebhook verifies and consumes gateway events. Irrelevant or
// duplicate events answer 200 so the gateway stops redelivering; only a
// capacity conflict or an infrastructure failure asks for a retry.
func (h *Handler) PaymentWebhook(c *ginext.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read payload"})
		return
	}

	ev, err := h.webhooks.ParseWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid webhook payload"})
		return
	}

	if ev.Type == "" {
		c.JSON(http.StatusOK, ginext.H{"status": "ignored"})
		return
	}

	if err := h.reservationService.HandlePaymentEvent(c.Request.Context(), *ev); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrWalkNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrInvitationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInsufficientCapacity),
		errors.Is(err, domain.ErrAlreadyConfirmed),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrAlreadyRedeemed),
		errors.Is(err, domain.ErrNotPending):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidCode),
		errors.Is(err, domain.ErrEmailMismatch),
		errors.Is(err, domain.ErrInvitationExpired),
		errors.Is(err, domain.ErrNotInvitationWalk):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
