package domain

import (
	"crypto/rand"
	"math/big"
	"time"
)

type InvitationStatus string

const (
	InvitationStatusIssued   InvitationStatus = "issued"
	InvitationStatusRedeemed InvitationStatus = "redeemed"
	InvitationStatusExpired  InvitationStatus = "expired"
)

type Invitation struct {
	ID         string           `json:"id"`
	WalkID     string           `json:"walk_id"`
	Code       string           `json:"code"`
	Email      string           `json:"email"`
	PartySize  int              `json:"party_size"`
	Message    string           `json:"message"`
	Status     InvitationStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	RedeemedAt *time.Time       `json:"redeemed_at,omitempty"`
}

type IssueInvitationsInput struct {
	Emails    []string
	PartySize int
	Message   string
}

const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 8
)

// NewInvitationCode returns a random 8-character code. The alphabet skips
// ambiguous characters (0/O, 1/I) since codes are typed by hand.
func NewInvitationCode() string {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("invitation code entropy: " + err.Error())
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf)
}
