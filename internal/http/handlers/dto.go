package handlers

import "time"

type submitPickupRequest struct {
	FullName       string  `json:"full_name"`
	Phone          string  `json:"phone"`
	SenderEmail    string  `json:"sender_email,omitempty"`
	ReceiverEmail  string  `json:"receiver_email,omitempty"`
	PickupAddress  string  `json:"pickup_address"`
	DropoffAddress string  `json:"dropoff_address"`
	PackageDesc    string  `json:"package_desc"`
	WeightKg       float64 `json:"weight_kg,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

type pickupDTO struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone"`
	PickupAddress  string    `json:"pickup_address"`
	DropoffAddress string    `json:"dropoff_address"`
	PackageDesc    string    `json:"package_desc"`
	WeightKg       float64   `json:"weight_kg"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type submitPickupResponse struct {
	OK      bool      `json:"ok"`
	Request pickupDTO `json:"request"`
}

type listPickupsResponse struct {
	OK    bool        `json:"ok"`
	Items []pickupDTO `json:"items"`
}

type updatePickupStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type convertPickupRequest struct {
	PickupID string `json:"pickupId"`
	ETA      string `json:"eta,omitempty"`
}

type convertPickupResponse struct {
	OK               bool   `json:"ok"`
	AlreadyConverted bool   `json:"alreadyConverted"`
	TrackingID       string `json:"trackingId"`
}

type createShipmentRequest struct {
	SenderName     string `json:"sender_name,omitempty"`
	SenderPhone    string `json:"sender_phone,omitempty"`
	SenderEmail    string `json:"sender_email,omitempty"`
	ReceiverName   string `json:"receiver_name,omitempty"`
	ReceiverPhone  string `json:"receiver_phone,omitempty"`
	ReceiverEmail  string `json:"receiver_email,omitempty"`
	PickupAddress  string `json:"pickup_address"`
	DropoffAddress string `json:"dropoff_address"`
	ETA            string `json:"eta,omitempty"`
}

type shipmentDTO struct {
	TrackingID     string    `json:"tracking_id"`
	CurrentStatus  string    `json:"current_status"`
	ETA            string    `json:"eta,omitempty"`
	PickupAddress  string    `json:"pickup_address"`
	DropoffAddress string    `json:"dropoff_address"`
	CreatedAt      time.Time `json:"created_at"`
}

type createShipmentResponse struct {
	OK       bool        `json:"ok"`
	Shipment shipmentDTO `json:"shipment"`
}

type listShipmentsResponse struct {
	OK    bool          `json:"ok"`
	Items []shipmentDTO `json:"items"`
}

type addEventRequest struct {
	TrackingID string `json:"trackingId"`
	Status     string `json:"status"`
	Note       string `json:"note,omitempty"`
}

type trackRequest struct {
	TrackingID string `json:"trackingId"`
}

type timelineEntryDTO struct {
	Status string `json:"status"`
	Time   string `json:"time"`
	Note   string `json:"note,omitempty"`
}

type trackShipmentDTO struct {
	TrackingID string             `json:"trackingId"`
	Current    string             `json:"current"`
	ETA        string             `json:"eta"`
	Timeline   []timelineEntryDTO `json:"timeline"`
}

type trackResponse struct {
	OK       bool             `json:"ok"`
	Shipment trackShipmentDTO `json:"shipment"`
}

type loginRequest struct {
	Password string `json:"password"`
}

type okResponse struct {
	OK bool `json:"ok"`
}
