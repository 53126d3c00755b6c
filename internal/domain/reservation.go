package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// ConfirmationSource tags which external trigger asked for a confirmation.
// All three go through the same confirm path; the tag is for logging and
// webhook no-op semantics only.
type ConfirmationSource string

const (
	SourceWebhook    ConfirmationSource = "webhook"
	SourceManual     ConfirmationSource = "manual"
	SourceInvitation ConfirmationSource = "invitation"
)

type Reservation struct {
	ID          string            `json:"id"`
	WalkID      string            `json:"walk_id"`
	HolderName  string            `json:"holder_name"`
	HolderEmail string            `json:"holder_email"`
	PartySize   int               `json:"party_size"`
	AmountCents int64             `json:"amount_cents"`
	ExternalRef *string           `json:"external_ref,omitempty"`
	Status      ReservationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	ConfirmedAt *time.Time        `json:"confirmed_at,omitempty"`
}

type CreateReservationInput struct {
	HolderName  string
	HolderEmail string
	PartySize   int
}

// PaymentIntent is what the gateway hands back when a paid reservation
// starts: the reference correlates the webhook, the client secret goes to
// the browser.
type PaymentIntent struct {
	Reference    string
	ClientSecret string
}

type PaymentEventType string

const (
	PaymentEventSucceeded PaymentEventType = "payment.succeeded"
	PaymentEventFailed    PaymentEventType = "payment.failed"
	PaymentEventCanceled  PaymentEventType = "payment.canceled"
)

// PaymentEvent is the gateway webhook fact the engine consumes. Only
// succeeded events change state.
type PaymentEvent struct {
	Type      PaymentEventType
	Reference string
}
