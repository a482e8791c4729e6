package shipmenttx

import (
	"context"

	"parcelpoint/internal/domain"
)

// Repository is the set of shipment store operations available inside a
// transaction. A timeline event insert and the current_status update it
// accompanies must go through the same transaction.
type Repository interface {
	InsertShipment(ctx context.Context, s *domain.Shipment) error
	InsertEvent(ctx context.Context, e *domain.TimelineEvent) error
	GetIDByTrackingCode(ctx context.Context, code string) (string, error)
	UpdateCurrentStatus(ctx context.Context, shipmentID, status string) error
}

// Runner is a transaction runner.
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
