package domain

import "time"

// Shipment represents a tracked parcel shipment. CurrentStatus is a cached
// projection of the latest timeline event and is only ever written together
// with an event insert.
type Shipment struct {
	ID             string
	TrackingCode   string
	PickupID       *string
	SenderName     string
	SenderPhone    string
	SenderEmail    string
	ReceiverName   string
	ReceiverPhone  string
	ReceiverEmail  string
	PickupAddress  string
	DropoffAddress string
	ETA            string
	CurrentStatus  string
	CreatedAt      time.Time
}

// TimelineEvent is a single append-only entry in a shipment's status history.
type TimelineEvent struct {
	ID         int64
	ShipmentID string
	Status     string
	Note       string
	CreatedAt  time.Time
}

// TrackView is the public projection of a shipment: the cached status plus
// the full ordered timeline.
type TrackView struct {
	Shipment Shipment
	Timeline []TimelineEvent
}
