//go:generate mockgen -source=contracts.go -destination=pickup_mocks_test.go -package=pickup

package pickup

import (
	"context"

	"parcelpoint/internal/domain"
)

// pickupRepository defines storage operations required by the business layer.
type pickupRepository interface {
	Insert(ctx context.Context, p *domain.PickupRequest) error
	Get(ctx context.Context, id string) (*domain.PickupRequest, error)
	List(ctx context.Context, status domain.PickupStatus, limit int) ([]domain.PickupRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.PickupStatus) (bool, error)
}

// shipmentConverter is the slice of the shipment service the conversion
// process depends on.
type shipmentConverter interface {
	CreateFromPickup(ctx context.Context, p *domain.PickupRequest, eta string) (*domain.Shipment, error)
	GetByPickupID(ctx context.Context, pickupID string) (*domain.Shipment, error)
}
