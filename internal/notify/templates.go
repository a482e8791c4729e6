package notify

import (
	"fmt"
	"html/template"
	"strings"
)

// Rendered is a notification ready to hand to the mail transport.
type Rendered struct {
	Subject string
	HTML    string
}

// html/template escapes every interpolated field, so customer-supplied free
// text (names, notes) cannot inject markup into the rendered mail.
var bodies = template.Must(template.New("notify").Parse(`
{{define "pickup-received"}}<p>Hi {{.Name}},</p>
<p>We received your pickup request and will get back to you shortly.</p>
{{if .Note}}<p>Your note: {{.Note}}</p>{{end}}
<p>— ParcelPoint</p>{{end}}

{{define "shipment-created"}}<p>Your shipment is on its way.</p>
<p>Tracking code: <strong>{{.TrackingCode}}</strong></p>
{{if .ETA}}<p>Estimated delivery: {{.ETA}}</p>{{end}}
<p>— ParcelPoint</p>{{end}}

{{define "status-update"}}<p>Shipment <strong>{{.TrackingCode}}</strong> is now: {{.Status}}.</p>
{{if .Note}}<p>{{.Note}}</p>{{end}}
{{if .ETA}}<p>Estimated delivery: {{.ETA}}</p>{{end}}
<p>— ParcelPoint</p>{{end}}
`))

// Render produces the subject and HTML body for a message.
func Render(msg Message) (Rendered, error) {
	if !msg.Kind.Valid() {
		return Rendered{}, fmt.Errorf("unknown notification kind %q", msg.Kind)
	}

	var sb strings.Builder
	if err := bodies.ExecuteTemplate(&sb, string(msg.Kind), msg); err != nil {
		return Rendered{}, fmt.Errorf("render %s: %w", msg.Kind, err)
	}

	return Rendered{
		Subject: subject(msg),
		HTML:    sb.String(),
	}, nil
}

func subject(msg Message) string {
	switch msg.Kind {
	case KindPickupReceived:
		return "We received your pickup request"
	case KindShipmentCreated:
		return "Your shipment " + msg.TrackingCode
	default:
		return fmt.Sprintf("Update for %s: %s", msg.TrackingCode, msg.Status)
	}
}
