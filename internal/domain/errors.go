package domain

import "errors"

var (
	ErrWalkNotFound        = errors.New("walk not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvitationNotFound  = errors.New("invitation not found")
)

var (
	ErrInsufficientCapacity = errors.New("not enough seats available")
	ErrAlreadyConfirmed     = errors.New("reservation is already confirmed")
	ErrAlreadyCancelled     = errors.New("reservation is already cancelled")
	ErrNotPending           = errors.New("reservation is not in pending status")
)

var (
	ErrInvalidCode             = errors.New("invitation code is not valid")
	ErrEmailMismatch           = errors.New("invitation was issued to a different email")
	ErrAlreadyRedeemed         = errors.New("invitation is already redeemed")
	ErrInvitationExpired       = errors.New("invitation has expired")
	ErrNotInvitationWalk       = errors.New("walk is not invitation-only")
	ErrCodeGenerationExhausted = errors.New("could not generate a unique invitation code")
)

var (
	ErrValidation = errors.New("validation error")
)
