package dto

type CreateWalkRequest struct {
	Title      string `json:"title" binding:"required"`
	Theme      string `json:"theme"`
	Location   string `json:"location" binding:"required"`
	WalkDate   string `json:"walk_date" binding:"required"`
	TotalSeats int    `json:"total_seats" binding:"required,gt=0"`
	PriceCents int64  `json:"price_cents"`
	Currency   string `json:"currency"`
	Kind       string `json:"kind" binding:"required,oneof=paid invite"`
}

type CreateReservationRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	PartySize int    `json:"party_size" binding:"required,gt=0"`
}

type RedeemInvitationRequest struct {
	Code  string `json:"code" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type IssueInvitationsRequest struct {
	Emails    []string `json:"emails" binding:"required,min=1,dive,email"`
	PartySize int      `json:"party_size" binding:"required,gt=0"`
	Message   string   `json:"message"`
}
