package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"parcelpoint/internal/domain"
)

const pickupColumns = `id, full_name, phone, sender_email, receiver_email,
       pickup_address, dropoff_address, package_desc, weight_kg, notes, status, created_at`

// PickupRepo represents the pickup request store.
type PickupRepo struct{ db *pgxpool.Pool }

// NewPickupRepo creates a new PickupRepo.
func NewPickupRepo(db *pgxpool.Pool) *PickupRepo { return &PickupRepo{db: db} }

// Insert persists a new pickup request and fills in CreatedAt.
func (r *PickupRepo) Insert(ctx context.Context, p *domain.PickupRequest) error {
	err := r.db.QueryRow(ctx, `
        INSERT INTO pickup_requests (
            id, full_name, phone, sender_email, receiver_email,
            pickup_address, dropoff_address, package_desc, weight_kg, notes, status
        )
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING created_at
    `,
		p.ID, p.FullName, p.Phone, p.SenderEmail, p.ReceiverEmail,
		p.PickupAddress, p.DropoffAddress, p.PackageDesc, p.WeightKg, p.Notes, p.Status,
	).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert pickup request: %w", err)
	}
	return nil
}

// Get returns a pickup request by id, or nil if it does not exist.
func (r *PickupRepo) Get(ctx context.Context, id string) (*domain.PickupRequest, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+pickupColumns+` FROM pickup_requests WHERE id = $1`, id)

	var p domain.PickupRequest
	err := row.Scan(
		&p.ID, &p.FullName, &p.Phone, &p.SenderEmail, &p.ReceiverEmail,
		&p.PickupAddress, &p.DropoffAddress, &p.PackageDesc, &p.WeightKg,
		&p.Notes, &p.Status, &p.CreatedAt,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pickup %q: %w", id, err)
	}
	return &p, nil
}

// List returns the most recent pickup requests with the given status.
func (r *PickupRepo) List(ctx context.Context, status domain.PickupStatus, limit int) ([]domain.PickupRequest, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+pickupColumns+` FROM pickup_requests
         WHERE status = $1
         ORDER BY created_at DESC
         LIMIT $2`, status, limit)
	if err != nil {
		return nil, fmt.Errorf("list pickups: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PickupRequest, 0, limit)
	for rows.Next() {
		var p domain.PickupRequest
		if err := rows.Scan(
			&p.ID, &p.FullName, &p.Phone, &p.SenderEmail, &p.ReceiverEmail,
			&p.PickupAddress, &p.DropoffAddress, &p.PackageDesc, &p.WeightKg,
			&p.Notes, &p.Status, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateStatus sets a pickup request's status and returns true if a row was
// affected.
func (r *PickupRepo) UpdateStatus(ctx context.Context, id string, status domain.PickupStatus) (bool, error) {
	ct, err := r.db.Exec(ctx,
		`UPDATE pickup_requests SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return false, fmt.Errorf("update pickup %q status: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
