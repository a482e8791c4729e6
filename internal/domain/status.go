package domain

import "regexp"

// Preset shipment timeline statuses. The ledger accepts free-form status
// labels; these are the values the admin UI offers.
const (
	StatusLabelCreated   = "Label created"
	StatusPickedUp       = "Picked up"
	StatusInTransit      = "In transit"
	StatusOutForDelivery = "Out for delivery"
	StatusDelivered      = "Delivered"
)

// reTrackingCode matches the public tracking code format: PP- plus 6
// uppercase hex digits.
var reTrackingCode = regexp.MustCompile(`^PP-[0-9A-F]{6}$`)

// ValidateTrackingCode reports whether s is a well-formed tracking code.
func ValidateTrackingCode(s string) bool {
	return reTrackingCode.MatchString(s)
}
