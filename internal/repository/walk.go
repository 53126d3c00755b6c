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

type WalkRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWalkRepo(db *dbpg.DB) *WalkRepository {
	return &WalkRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const walkColumns = `id, title, theme, location, walk_date, total_seats, available_seats,
		price_cents, currency, kind, status, created_at, updated_at`

func scanWalk(row interface{ Scan(...any) error }) (*domain.Walk, error) {
	var w domain.Walk
	err := row.Scan(
		&w.ID, &w.Title, &w.Theme, &w.Location, &w.WalkDate,
		&w.TotalSeats, &w.AvailableSeats, &w.PriceCents, &w.Currency,
		&w.Kind, &w.Status, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WalkRepository) Create(ctx context.Context, w *domain.Walk) error {
	query := `INSERT INTO walks (id, title, theme, location, walk_date, total_seats, available_seats,
				price_cents, currency, kind, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		w.ID, w.Title, w.Theme, w.Location, w.WalkDate,
		w.TotalSeats, w.AvailableSeats, w.PriceCents, w.Currency,
		w.Kind, w.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert walk: %w", err)
	}

	return nil
}

func (r *WalkRepository) GetByID(ctx context.Context, id string) (*domain.Walk, error) {
	query := `SELECT ` + walkColumns + ` FROM walks WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get walk: %w", err)
	}

	w, err := scanWalk(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWalkNotFound
		}
		return nil, fmt.Errorf("scan walk: %w", err)
	}

	return w, nil
}

func (r *WalkRepository) List(ctx context.Context) ([]*domain.Walk, error) {
	query := `SELECT ` + walkColumns + ` FROM walks ORDER BY walk_date DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list walks: %w", err)
	}
	defer rows.Close()

	var res []*domain.Walk
	for rows.Next() {
		w, err := scanWalk(rows)
		if err != nil {
			return nil, fmt.Errorf("scan walk: %w", err)
		}
		res = append(res, w)
	}

	return res, rows.Err()
}

func (r *WalkRepository) Publish(ctx context.Context, id string) error {
	query := `UPDATE walks SET status = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.WalkStatusPublished)
	if err != nil {
		return fmt.Errorf("publish walk: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("publish rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrWalkNotFound
	}

	return nil
}

// CheckAvailability is advisory only: it reads the current counter without
// holding any lock, so a positive answer can go stale before confirmation.
// Seats are only committed by the conditional UPDATE in commitSeats.
func (r *WalkRepository) CheckAvailability(ctx context.Context, walkID string, partySize int) (bool, error) {
	query := `SELECT available_seats FROM walks WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, walkID)
	if err != nil {
		return false, fmt.Errorf("check availability: %w", err)
	}

	var available int
	if err = row.Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrWalkNotFound
		}
		return false, fmt.Errorf("scan availability: %w", err)
	}

	return partySize <= available, nil
}

// querier covers both *sql.DB and *sql.Tx so the seat primitives can run
// standalone or inside the confirmation transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// commitSeats is the single mutation path that reduces available_seats.
// The availability re-check and the decrement happen in one conditional
// UPDATE, so two concurrent commits for the last seats cannot both pass.
func commitSeats(ctx context.Context, q querier, walkID string, partySize int) error {
	query := `UPDATE walks
			  SET available_seats = available_seats - $2, updated_at = now()
			  WHERE id = $1 AND available_seats >= $2`
	res, err := q.ExecContext(ctx, query, walkID, partySize)
	if err != nil {
		return fmt.Errorf("commit seats: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("commit seats rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM walks WHERE id = $1)`
		if err = q.QueryRowContext(ctx, checkQuery, walkID).Scan(&exists); err != nil {
			return fmt.Errorf("commit seats check walk: %w", err)
		}
		if !exists {
			return domain.ErrWalkNotFound
		}
		return domain.ErrInsufficientCapacity
	}

	return nil
}

func (r *WalkRepository) CommitSeats(ctx context.Context, walkID string, partySize int) error {
	return commitSeats(ctx, r.db.Master, walkID, partySize)
}

// releaseSeats is clamped to total_seats so a double release can never push
// the counter past the initial capacity.
func releaseSeats(ctx context.Context, q querier, walkID string, partySize int) error {
	query := `UPDATE walks
			  SET available_seats = LEAST(total_seats, available_seats + $2), updated_at = now()
			  WHERE id = $1`
	res, err := q.ExecContext(ctx, query, walkID, partySize)
	if err != nil {
		return fmt.Errorf("release seats: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("release seats rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrWalkNotFound
	}

	return nil
}

func (r *WalkRepository) ReleaseSeats(ctx context.Context, walkID string, partySize int) error {
	return releaseSeats(ctx, r.db.Master, walkID, partySize)
}

func (r *WalkRepository) ResetSeats(ctx context.Context, walkID string) error {
	query := `UPDATE walks SET available_seats = total_seats, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, walkID)
	if err != nil {
		return fmt.Errorf("reset seats: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reset seats rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrWalkNotFound
	}

	return nil
}

// ReconcileAll recomputes available_seats from the ledger for every walk
// whose stored counter has drifted. Each redeemed invitation owns exactly
// one confirmed reservation, so summing confirmed reservations covers both
// paid and invitation seats without double counting. The old alias in the
// self-join keeps the pre-update value so the report can include the
// adjustment magnitude. GREATEST pins the target at zero when manual edits
// pushed the confirmed sum past total_seats; without it the negative value
// would trip the available_seats CHECK and abort the repair for every walk.
func (r *WalkRepository) ReconcileAll(ctx context.Context) (domain.ReconcileReport, error) {
	query := `
		UPDATE walks w
		SET available_seats = GREATEST(0, c.correct), updated_at = now()
		FROM (
			SELECT w2.id,
				   w2.total_seats - COALESCE(SUM(res.party_size) FILTER (WHERE res.status = 'confirmed'), 0) AS correct
			FROM walks w2
			LEFT JOIN reservations res ON res.walk_id = w2.id
			GROUP BY w2.id
		) c, walks old
		WHERE w.id = c.id AND old.id = w.id AND w.available_seats <> GREATEST(0, c.correct)
		RETURNING w.id, old.available_seats, GREATEST(0, c.correct), c.correct`

	var report domain.ReconcileReport
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return report, fmt.Errorf("reconcile walks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var before, after, raw int
		if err = rows.Scan(&id, &before, &after, &raw); err != nil {
			return report, fmt.Errorf("scan reconcile row: %w", err)
		}
		report.WalksRepaired++
		if before > after {
			report.SeatsAdjusted += before - after
		} else {
			report.SeatsAdjusted += after - before
		}
		if raw < 0 {
			report.Oversold++
		}
	}

	return report, rows.Err()
}
