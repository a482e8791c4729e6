package notify

import "strings"

// Kind selects the notification template.
type Kind string

// List of notification kinds
const (
	KindPickupReceived  Kind = "pickup-received"
	KindShipmentCreated Kind = "shipment-created"
	KindStatusUpdate    Kind = "status-update"
)

// Valid checks if the Kind is one of the known template kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindPickupReceived, KindShipmentCreated, KindStatusUpdate:
		return true
	}
	return false
}

// Message is a single notification job. To may contain duplicates and empty
// strings; Normalize cleans it up before delivery.
type Message struct {
	Kind         Kind     `json:"kind"`
	To           []string `json:"to"`
	Name         string   `json:"name,omitempty"`
	TrackingCode string   `json:"tracking_code,omitempty"`
	Status       string   `json:"status,omitempty"`
	Note         string   `json:"note,omitempty"`
	ETA          string   `json:"eta,omitempty"`
}

// Normalize returns the recipient set with empty addresses dropped and
// duplicates removed, preserving first-seen order.
func Normalize(to []string) []string {
	seen := make(map[string]struct{}, len(to))
	out := make([]string, 0, len(to))
	for _, addr := range to {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		key := strings.ToLower(addr)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, addr)
	}
	return out
}
