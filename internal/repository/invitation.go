package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/velikanov/walkbooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// maxCodeAttempts bounds the regenerate-on-collision loop during issuance.
const maxCodeAttempts = 5

type InvitationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInvitationRepo(db *dbpg.DB) *InvitationRepository {
	return &InvitationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const invitationColumns = `id, walk_id, code, email, party_size, message, status, created_at, redeemed_at`

func scanInvitation(row interface{ Scan(...any) error }) (*domain.Invitation, error) {
	var inv domain.Invitation
	err := row.Scan(
		&inv.ID, &inv.WalkID, &inv.Code, &inv.Email, &inv.PartySize,
		&inv.Message, &inv.Status, &inv.CreatedAt, &inv.RedeemedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// IssueBatch creates one issued invitation per email in a single
// transaction. The walk row is locked to check the batch against current
// availability, but seats are not decremented: like paid reservations,
// invitations only commit seats at redemption. Codes are regenerated on
// collision up to maxCodeAttempts; the unique index remains the backstop
// for a lost race, which fails the whole batch.
func (r *InvitationRepository) IssueBatch(ctx context.Context, walkID string, in domain.IssueInvitationsInput) ([]*domain.Invitation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	spotQuery := `SELECT available_seats FROM walks WHERE id = $1 FOR UPDATE`
	var available int
	if err = tx.QueryRowContext(ctx, spotQuery, walkID).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWalkNotFound
		}
		return nil, fmt.Errorf("get available seats: %w", err)
	}

	if len(in.Emails)*in.PartySize > available {
		return nil, domain.ErrInsufficientCapacity
	}

	now := time.Now().UTC()
	result := make([]*domain.Invitation, 0, len(in.Emails))
	for _, email := range in.Emails {
		code, err := r.uniqueCode(ctx, tx)
		if err != nil {
			return nil, err
		}

		inv := &domain.Invitation{
			ID:        uuid.New().String(),
			WalkID:    walkID,
			Code:      code,
			Email:     email,
			PartySize: in.PartySize,
			Message:   in.Message,
			Status:    domain.InvitationStatusIssued,
			CreatedAt: now,
		}

		query := `INSERT INTO invitations (id, walk_id, code, email, party_size, message, status, created_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		_, err = tx.ExecContext(
			ctx, query, inv.ID, inv.WalkID, inv.Code, inv.Email,
			inv.PartySize, inv.Message, inv.Status, inv.CreatedAt,
		)
		if err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return nil, domain.ErrCodeGenerationExhausted
			}
			return nil, fmt.Errorf("insert invitation: %w", err)
		}

		result = append(result, inv)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit issue tx: %w", err)
	}

	return result, nil
}

func (r *InvitationRepository) uniqueCode(ctx context.Context, tx *sql.Tx) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := domain.NewInvitationCode()

		var exists bool
		query := `SELECT EXISTS(SELECT 1 FROM invitations WHERE code = $1)`
		if err := tx.QueryRowContext(ctx, query, code).Scan(&exists); err != nil {
			return "", fmt.Errorf("check code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", domain.ErrCodeGenerationExhausted
}

func (r *InvitationRepository) GetByCode(ctx context.Context, code string) (*domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE code = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get invitation by code: %w", err)
	}

	inv, err := scanInvitation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvalidCode
		}
		return nil, fmt.Errorf("scan invitation: %w", err)
	}

	return inv, nil
}

// HasRedemption is the duplicate-booking guard: it answers whether any
// invitation for this walk and email is already redeemed, independent of
// which code is presented.
func (r *InvitationRepository) HasRedemption(ctx context.Context, walkID, email string) (bool, error) {
	query := `SELECT EXISTS(
				SELECT 1 FROM invitations
				WHERE walk_id = $1 AND lower(email) = lower($2) AND status = $3)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, walkID, email, domain.InvitationStatusRedeemed)
	if err != nil {
		return false, fmt.Errorf("check redemption: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan redemption check: %w", err)
	}

	return exists, nil
}

// Redeem flips the invitation to redeemed, commits the seats and inserts
// the confirmed reservation in one transaction. The FOR UPDATE on the
// invitation row serializes two redemption attempts for the same code: the
// loser re-reads a redeemed row and short-circuits without touching seats.
func (r *InvitationRepository) Redeem(ctx context.Context, code, holderName string) (*domain.Invitation, *domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE code = $1 FOR UPDATE`
	inv, err := scanInvitation(tx.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrInvalidCode
		}
		return nil, nil, fmt.Errorf("lock invitation: %w", err)
	}

	switch inv.Status {
	case domain.InvitationStatusRedeemed:
		return nil, nil, domain.ErrAlreadyRedeemed
	case domain.InvitationStatusExpired:
		return nil, nil, domain.ErrInvitationExpired
	}

	if err = commitSeats(ctx, tx, inv.WalkID, inv.PartySize); err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	res := &domain.Reservation{
		ID:          uuid.New().String(),
		WalkID:      inv.WalkID,
		HolderName:  holderName,
		HolderEmail: inv.Email,
		PartySize:   inv.PartySize,
		AmountCents: 0,
		Status:      domain.ReservationStatusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
		ConfirmedAt: &now,
	}

	insertQuery := `INSERT INTO reservations (id, walk_id, holder_name, holder_email, party_size,
					  amount_cents, status, created_at, updated_at, confirmed_at)
				    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, insertQuery, res.ID, res.WalkID, res.HolderName, res.HolderEmail,
		res.PartySize, res.AmountCents, res.Status, res.CreatedAt, res.UpdatedAt, res.ConfirmedAt,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("insert redeemed reservation: %w", err)
	}

	updateQuery := `UPDATE invitations SET status = $2, redeemed_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, inv.ID, domain.InvitationStatusRedeemed, now); err != nil {
		return nil, nil, fmt.Errorf("mark invitation redeemed: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit redeem tx: %w", err)
	}

	inv.Status = domain.InvitationStatusRedeemed
	inv.RedeemedAt = &now

	return inv, res, nil
}

// Expire is the administrative status override.
func (r *InvitationRepository) Expire(ctx context.Context, id string) error {
	query := `UPDATE invitations SET status = $2 WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, domain.InvitationStatusExpired, domain.InvitationStatusIssued,
	)
	if err != nil {
		return fmt.Errorf("expire invitation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("expire rows affected: %w", err)
	}
	if rows == 0 {
		var status domain.InvitationStatus
		checkQuery := `SELECT status FROM invitations WHERE id = $1`
		row, checkErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if checkErr != nil {
			return fmt.Errorf("expire check: %w", checkErr)
		}
		if checkErr = row.Scan(&status); checkErr != nil {
			if errors.Is(checkErr, sql.ErrNoRows) {
				return domain.ErrInvitationNotFound
			}
			return fmt.Errorf("expire check scan: %w", checkErr)
		}
		if status == domain.InvitationStatusRedeemed {
			return domain.ErrAlreadyRedeemed
		}
		return nil // already expired
	}

	return nil
}
