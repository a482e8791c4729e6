package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parcelpoint/internal/domain"
	"parcelpoint/internal/ports/shipmenttx"
)

const shipmentColumns = `id, tracking_id, pickup_id,
       sender_name, sender_phone, sender_email,
       receiver_name, receiver_phone, receiver_email,
       pickup_address, dropoff_address, eta, current_status, created_at`

// ShipmentRepo represents the shipment store.
type ShipmentRepo struct {
	db *pgxpool.Pool
}

// NewShipmentRepo creates a new ShipmentRepo.
func NewShipmentRepo(db *pgxpool.Pool) *ShipmentRepo {
	return &ShipmentRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *ShipmentRepo) WithTx(ctx context.Context, fn func(tx shipmenttx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// roll back on panic before re-raising
	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	wrapped := &TxRepo{tx: tx}

	if err := fn(wrapped); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

func scanShipment(row pgx.Row, s *domain.Shipment) error {
	return row.Scan(
		&s.ID, &s.TrackingCode, &s.PickupID,
		&s.SenderName, &s.SenderPhone, &s.SenderEmail,
		&s.ReceiverName, &s.ReceiverPhone, &s.ReceiverEmail,
		&s.PickupAddress, &s.DropoffAddress, &s.ETA, &s.CurrentStatus, &s.CreatedAt,
	)
}

// GetByTrackingCode returns the shipment with the given tracking code, or nil.
func (r *ShipmentRepo) GetByTrackingCode(ctx context.Context, code string) (*domain.Shipment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+shipmentColumns+` FROM shipments WHERE tracking_id = $1`, code)

	var s domain.Shipment
	if err := scanShipment(row, &s); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment %q: %w", code, err)
	}
	return &s, nil
}

// GetByPickupID returns the shipment converted from the given pickup request,
// or nil if the pickup has not been converted.
func (r *ShipmentRepo) GetByPickupID(ctx context.Context, pickupID string) (*domain.Shipment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+shipmentColumns+` FROM shipments WHERE pickup_id = $1`, pickupID)

	var s domain.Shipment
	if err := scanShipment(row, &s); err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment by pickup %q: %w", pickupID, err)
	}
	return &s, nil
}

// List returns the most recent shipments, optionally filtered by a
// case-insensitive tracking code substring.
func (r *ShipmentRepo) List(ctx context.Context, query string, limit int) ([]domain.Shipment, error) {
	q := `SELECT ` + shipmentColumns + ` FROM shipments`
	args := make([]any, 0, 2)
	if query != "" {
		q += ` WHERE tracking_id ILIKE $1`
		args = append(args, "%"+query+"%")
	}
	q += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Shipment, 0, limit)
	for rows.Next() {
		var s domain.Shipment
		if err := scanShipment(rows, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListEvents returns a shipment's timeline ordered by creation time ascending.
func (r *ShipmentRepo) ListEvents(ctx context.Context, shipmentID string) ([]domain.TimelineEvent, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, shipment_id, status, note, created_at
        FROM shipment_events
        WHERE shipment_id = $1
        ORDER BY created_at ASC, id ASC
    `, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list events for shipment %q: %w", shipmentID, err)
	}
	defer rows.Close()

	var out []domain.TimelineEvent
	for rows.Next() {
		var e domain.TimelineEvent
		if err := rows.Scan(&e.ID, &e.ShipmentID, &e.Status, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// TxRepo represents shipment store operations bound to a transaction.
type TxRepo struct {
	tx pgx.Tx
}

// InsertShipment - inserts a new shipment row and fills in CreatedAt.
func (r *TxRepo) InsertShipment(ctx context.Context, s *domain.Shipment) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO shipments (
            id, tracking_id, pickup_id,
            sender_name, sender_phone, sender_email,
            receiver_name, receiver_phone, receiver_email,
            pickup_address, dropoff_address, eta, current_status
        )
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING created_at
    `,
		s.ID, s.TrackingCode, s.PickupID,
		s.SenderName, s.SenderPhone, s.SenderEmail,
		s.ReceiverName, s.ReceiverPhone, s.ReceiverEmail,
		s.PickupAddress, s.DropoffAddress, s.ETA, s.CurrentStatus,
	).Scan(&s.CreatedAt)
	if err != nil {
		return err
	}
	return nil
}

// InsertEvent - appends a timeline event for a shipment.
func (r *TxRepo) InsertEvent(ctx context.Context, e *domain.TimelineEvent) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO shipment_events (shipment_id, status, note)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `, e.ShipmentID, e.Status, e.Note).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert event for shipment %q: %w", e.ShipmentID, err)
	}
	return nil
}

// GetIDByTrackingCode resolves a tracking code to a shipment id within the
// transaction. Returns "" if the code does not exist.
func (r *TxRepo) GetIDByTrackingCode(ctx context.Context, code string) (string, error) {
	var id string
	err := r.tx.QueryRow(ctx,
		`SELECT id FROM shipments WHERE tracking_id = $1`, code).Scan(&id)
	if err != nil {
		if IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("resolve tracking code %q: %w", code, err)
	}
	return id, nil
}

// UpdateCurrentStatus - refreshes the cached status projection on a shipment.
func (r *TxRepo) UpdateCurrentStatus(ctx context.Context, shipmentID, status string) error {
	ct, err := r.tx.Exec(ctx,
		`UPDATE shipments SET current_status = $2 WHERE id = $1`, shipmentID, status)
	if err != nil {
		return fmt.Errorf("update current status of %q: %w", shipmentID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("shipment %q not found", shipmentID)
	}
	return nil
}
