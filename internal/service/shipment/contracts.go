package shipment

import (
	"context"

	"parcelpoint/internal/domain"
	"parcelpoint/internal/ports/shipmenttx"
)

// shipmentRepository defines storage operations required by the business layer.
type shipmentRepository interface {
	WithTx(ctx context.Context, fn func(tx shipmenttx.Repository) error) error
	GetByTrackingCode(ctx context.Context, code string) (*domain.Shipment, error)
	GetByPickupID(ctx context.Context, pickupID string) (*domain.Shipment, error)
	List(ctx context.Context, query string, limit int) ([]domain.Shipment, error)
	ListEvents(ctx context.Context, shipmentID string) ([]domain.TimelineEvent, error)
}

// counter is a subset of prometheus.Counter.
type counter interface {
	Inc()
}
