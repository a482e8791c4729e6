package handlers

import (
	"context"

	"parcelpoint/internal/domain"
	pickupsvc "parcelpoint/internal/service/pickup"
	shipmentsvc "parcelpoint/internal/service/shipment"
)

type pickupUsecase interface {
	Submit(ctx context.Context, in pickupsvc.SubmitInput) (*domain.PickupRequest, error)
	List(ctx context.Context, status domain.PickupStatus, limit int) ([]domain.PickupRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.PickupStatus) error
	Convert(ctx context.Context, pickupID, eta string) (domain.ConvertResult, error)
}

// NewPickupUsecase wires a pickup Service into a pickupUsecase.
func NewPickupUsecase(svc *pickupsvc.Service) pickupUsecase {
	return svc
}

type shipmentUsecase interface {
	Create(ctx context.Context, in shipmentsvc.CreateInput) (*domain.Shipment, error)
	Track(ctx context.Context, code string) (*domain.TrackView, error)
	List(ctx context.Context, query string, limit int) ([]domain.Shipment, error)
	AppendStatus(ctx context.Context, code, status, note string) error
}

// NewShipmentUsecase wires a shipment Service into a shipmentUsecase.
func NewShipmentUsecase(svc *shipmentsvc.Service) shipmentUsecase {
	return svc
}

// sessionGate is the slice of the access gate the HTTP layer needs.
type sessionGate interface {
	IssueSession(password string) (string, error)
	IsAdmin(token string) bool
	Revoke(token string)
}
