package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/velikanov/walkbooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const reservationColumns = `id, walk_id, holder_name, holder_email, party_size, amount_cents,
		external_ref, status, created_at, updated_at, confirmed_at`

func scanReservation(row interface{ Scan(...any) error }) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ID, &res.WalkID, &res.HolderName, &res.HolderEmail,
		&res.PartySize, &res.AmountCents, &res.ExternalRef, &res.Status,
		&res.CreatedAt, &res.UpdatedAt, &res.ConfirmedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CreatePending inserts a pending reservation without touching the seat
// counter. The availability check here is the best-effort early rejection:
// it locks the walk row only long enough to refuse obviously doomed
// attempts, the binding re-check happens at confirmation.
func (r *ReservationRepository) CreatePending(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	spotQuery := `SELECT available_seats FROM walks WHERE id = $1 FOR UPDATE`
	var available int
	if err = tx.QueryRowContext(ctx, spotQuery, res.WalkID).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrWalkNotFound
		}
		return fmt.Errorf("get available seats: %w", err)
	}

	if res.PartySize > available {
		return domain.ErrInsufficientCapacity
	}

	query := `INSERT INTO reservations (id, walk_id, holder_name, holder_email, party_size,
				amount_cents, external_ref, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query, res.ID, res.WalkID, res.HolderName, res.HolderEmail,
		res.PartySize, res.AmountCents, res.ExternalRef, res.Status,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	return tx.Commit()
}

// AttachExternalRef records the gateway reference. Repeated calls with the
// same value are no-ops; a different value on a row that already has one is
// refused.
func (r *ReservationRepository) AttachExternalRef(ctx context.Context, id, ref string) error {
	query := `UPDATE reservations
			  SET external_ref = $2, updated_at = now()
			  WHERE id = $1 AND (external_ref IS NULL OR external_ref = $2)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, ref)
	if err != nil {
		return fmt.Errorf("attach external ref: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("attach ref rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM reservations WHERE id = $1)`
		row, checkErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if checkErr != nil {
			return fmt.Errorf("attach ref check: %w", checkErr)
		}
		if checkErr = row.Scan(&exists); checkErr != nil {
			return fmt.Errorf("attach ref check scan: %w", checkErr)
		}
		if !exists {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("reservation %s already has a different external ref", id)
	}

	return nil
}

// Confirm is the atomic confirmation unit. The FOR UPDATE on the
// reservation row serializes concurrent confirm attempts (webhook vs
// manual) for the same reservation: whichever transaction wins flips the
// status, the loser re-reads a non-pending row and short-circuits. The
// seat decrement and the status flip commit or roll back together.
func (r *ReservationRepository) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`
	res, err := scanReservation(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("lock reservation: %w", err)
	}

	switch res.Status {
	case domain.ReservationStatusConfirmed:
		return nil, domain.ErrAlreadyConfirmed
	case domain.ReservationStatusCancelled:
		return nil, domain.ErrNotPending
	}

	if err = commitSeats(ctx, tx, res.WalkID, res.PartySize); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	updateQuery := `UPDATE reservations
					SET status = $2, confirmed_at = $3, updated_at = $3
					WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, id, domain.ReservationStatusConfirmed, now); err != nil {
		return nil, fmt.Errorf("confirm reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit confirm tx: %w", err)
	}

	res.Status = domain.ReservationStatusConfirmed
	res.ConfirmedAt = &now
	res.UpdatedAt = now

	return res, nil
}

// Cancel voids a reservation. A pending row never held seats, so only a
// confirmed one releases them, clamped to the walk's total.
func (r *ReservationRepository) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`
	res, err := scanReservation(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("lock reservation: %w", err)
	}

	if res.Status == domain.ReservationStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	if res.Status == domain.ReservationStatusConfirmed {
		if err = releaseSeats(ctx, tx, res.WalkID, res.PartySize); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	updateQuery := `UPDATE reservations SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, id, domain.ReservationStatusCancelled, now); err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancel tx: %w", err)
	}

	res.Status = domain.ReservationStatusCancelled
	res.UpdatedAt = now

	return res, nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

// GetByExternalRef correlates an inbound payment event with the
// reservation that spawned the intent.
func (r *ReservationRepository) GetByExternalRef(ctx context.Context, ref string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE external_ref = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ref)
	if err != nil {
		return nil, fmt.Errorf("get reservation by ref: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation by ref: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) ListByWalk(ctx context.Context, walkID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE walk_id = $1
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, walkID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by walk: %w", err)
	}
	defer rows.Close()

	var result []*domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		result = append(result, res)
	}

	return result, rows.Err()
}
