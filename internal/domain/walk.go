package domain

import "time"

type WalkKind string

const (
	WalkKindPaid   WalkKind = "paid"
	WalkKindInvite WalkKind = "invite"
)

type WalkStatus string

const (
	WalkStatusDraft     WalkStatus = "draft"
	WalkStatusPublished WalkStatus = "published"
	WalkStatusArchived  WalkStatus = "archived"
)

type Walk struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Theme          string     `json:"theme"`
	Location       string     `json:"location"`
	WalkDate       time.Time  `json:"walk_date"`
	TotalSeats     int        `json:"total_seats"`
	AvailableSeats int        `json:"available_seats"`
	PriceCents     int64      `json:"price_cents"`
	Currency       string     `json:"currency"`
	Kind           WalkKind   `json:"kind"`
	Status         WalkStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// EffectiveStatus derives the archived state from the walk date instead of
// storing it: a walk whose date has passed is archived no matter what the
// stored status says.
func (w *Walk) EffectiveStatus(now time.Time) WalkStatus {
	if now.After(w.WalkDate) {
		return WalkStatusArchived
	}
	return w.Status
}

func (w *Walk) IsBookable(now time.Time) bool {
	return w.EffectiveStatus(now) == WalkStatusPublished
}

type WalkDetails struct {
	Walk         Walk          `json:"walk"`
	Reservations []Reservation `json:"reservations"`
}

type CreateWalkInput struct {
	Title      string
	Theme      string
	Location   string
	WalkDate   time.Time
	TotalSeats int
	PriceCents int64
	Currency   string
	Kind       WalkKind
}

// ReconcileReport summarizes one run of the seat drift correction job.
// Oversold counts walks whose confirmed ledger exceeds total capacity;
// their availability is pinned at zero until an operator intervenes.
type ReconcileReport struct {
	WalksRepaired int `json:"walks_repaired"`
	SeatsAdjusted int `json:"seats_adjusted"`
	Oversold      int `json:"oversold"`
}
