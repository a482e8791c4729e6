package domain

import "time"

// PickupStatus represents the lifecycle status of a pickup request.
type PickupStatus string

// List of possible pickup request statuses
const (
	PickupPending   PickupStatus = "pending"
	PickupAssigned  PickupStatus = "assigned"
	PickupPickedUp  PickupStatus = "picked_up"
	PickupCompleted PickupStatus = "completed"
	PickupCancelled PickupStatus = "cancelled"
)

var allowedPickupStatuses = [...]PickupStatus{
	PickupPending, PickupAssigned, PickupPickedUp, PickupCompleted, PickupCancelled,
}

// Valid checks if the PickupStatus is one of the allowed values.
func (s PickupStatus) Valid() bool {
	for _, v := range allowedPickupStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// PickupRequest represents a customer's request to have a parcel picked up.
// Requests are never deleted; conversion to a shipment marks them assigned.
type PickupRequest struct {
	ID             string
	FullName       string
	Phone          string
	SenderEmail    string
	ReceiverEmail  string
	PickupAddress  string
	DropoffAddress string
	PackageDesc    string
	WeightKg       float64
	Notes          string
	Status         PickupStatus
	CreatedAt      time.Time
}

// ConvertResult - result of converting a pickup request into a shipment.
type ConvertResult struct {
	TrackingCode     string
	AlreadyConverted bool
}
