package dto

import (
	"time"

	"github.com/velikanov/walkbooker/internal/domain"
)

type WalkResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Theme          string `json:"theme"`
	Location       string `json:"location"`
	WalkDate       string `json:"walk_date"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
	PriceCents     int64  `json:"price_cents"`
	Currency       string `json:"currency"`
	Kind           string `json:"kind"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type WalkDetailsResponse struct {
	Walk         WalkResponse          `json:"walk"`
	Reservations []ReservationResponse `json:"reservations"`
}

type ReservationResponse struct {
	ID          string `json:"id"`
	WalkID      string `json:"walk_id"`
	HolderName  string `json:"holder_name"`
	HolderEmail string `json:"holder_email"`
	PartySize   int    `json:"party_size"`
	AmountCents int64  `json:"amount_cents"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type CreateReservationResponse struct {
	ReservationID string `json:"reservation_id"`
	ClientSecret  string `json:"client_secret"`
}

type RedeemInvitationResponse struct {
	ReservationID string `json:"reservation_id"`
}

type InvitationResponse struct {
	ID        string `json:"id"`
	WalkID    string `json:"walk_id"`
	Code      string `json:"code"`
	Email     string `json:"email"`
	PartySize int    `json:"party_size"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type ReconcileResponse struct {
	WalksRepaired int `json:"walks_repaired"`
	SeatsAdjusted int `json:"seats_adjusted"`
	Oversold      int `json:"oversold"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToWalkResponse(w *domain.Walk) WalkResponse {
	return WalkResponse{
		ID:             w.ID,
		Title:          w.Title,
		Theme:          w.Theme,
		Location:       w.Location,
		WalkDate:       w.WalkDate.Format(time.RFC3339),
		TotalSeats:     w.TotalSeats,
		AvailableSeats: w.AvailableSeats,
		PriceCents:     w.PriceCents,
		Currency:       w.Currency,
		Kind:           string(w.Kind),
		Status:         string(w.EffectiveStatus(time.Now())),
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
	}
}

func ToWalkDetailsResponse(d *domain.WalkDetails) WalkDetailsResponse {
	reservations := make([]ReservationResponse, 0, len(d.Reservations))
	for _, r := range d.Reservations {
		reservations = append(reservations, ToReservationResponse(&r))
	}

	return WalkDetailsResponse{
		Walk:         ToWalkResponse(&d.Walk),
		Reservations: reservations,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		WalkID:      r.WalkID,
		HolderName:  r.HolderName,
		HolderEmail: r.HolderEmail,
		PartySize:   r.PartySize,
		AmountCents: r.AmountCents,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func ToInvitationResponse(i *domain.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:        i.ID,
		WalkID:    i.WalkID,
		Code:      i.Code,
		Email:     i.Email,
		PartySize: i.PartySize,
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt.Format(time.RFC3339),
	}
}
