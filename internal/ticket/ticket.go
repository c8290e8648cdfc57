// Package ticket builds the shareable CO₂ footprint card.
package ticket

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"github.com/blueswitch/blueswitch/internal/domain"
)

// issuedLayout renders dates the way an en-US long locale string does.
const issuedLayout = "January 2, 2006 at 3:04 PM"

const payloadType = "co2_ticket"

// Translator resolves UI strings.
type Translator interface {
	T(key string) string
}

// Ticket is a point-in-time snapshot of a footprint report.
type Ticket struct {
	ID            uuid.UUID
	Title         string
	Owner         string
	TotalCO2      float64
	HighestImpact string
	Trees         int
	IssuedAt      time.Time
}

// New builds a ticket for owner from report. A report without a highest
// device gets the translated "no device" label.
func New(report domain.CO2Report, owner string, tr Translator, now time.Time) Ticket {
	label := tr.T("No hay dispositivo registrado")
	if report.HighestDevice != nil && report.HighestDevice.Name != "" {
		label = report.HighestDevice.Name
	}

	return Ticket{
		ID:            uuid.New(),
		Title:         tr.T("Reporte de Huella de Carbono"),
		Owner:         owner,
		TotalCO2:      report.TotalCO2,
		HighestImpact: label,
		Trees:         TreesFor(report.TotalCO2),
		IssuedAt:      now,
	}
}

// TreesFor rounds the tree equivalent of kg of CO₂ up.
func TreesFor(kgCO2 float64) int {
	if kgCO2 <= 0 {
		return 0
	}
	return int(math.Ceil(kgCO2 / domain.KgCO2PerTree))
}

// Savings returns the translated savings sentence.
func (t Ticket) Savings(tr Translator) string {
	return tr.T("Equivalente a") + " " + fmt.Sprint(t.Trees) + " " + tr.T("árboles plantados")
}

// IssuedAtText formats the issue time in its own location.
func (t Ticket) IssuedAtText() string {
	return t.IssuedAt.Format(issuedLayout)
}

// Text renders the ticket as a plain text card.
func (t Ticket) Text(tr Translator) string {
	var b strings.Builder
	rule := strings.Repeat("-", 36)

	b.WriteString(t.Title + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%s: %s\n", tr.T("Usuario"), t.Owner)
	fmt.Fprintf(&b, "%s: %.2f kg %s\n", tr.T("Huella de Carbono"), t.TotalCO2, tr.T("CO₂ equivalente"))
	fmt.Fprintf(&b, "%s: %s (%s)\n", tr.T("Dispositivo de Mayor Impacto"), t.HighestImpact, tr.T("Mayor consumo energético"))
	fmt.Fprintf(&b, "%s: %s\n", tr.T("Equivalente en Ahorros"), t.Savings(tr))
	fmt.Fprintf(&b, "%s: %s\n", tr.T("Fecha y Hora"), t.IssuedAtText())
	b.WriteString(rule + "\n")
	return b.String()
}

// Payload is the JSON encoded in the ticket QR code.
type Payload struct {
	Type     string    `json:"type"`
	ID       string    `json:"id"`
	Owner    string    `json:"owner"`
	TotalCO2 float64   `json:"total_CO2"`
	Device   string    `json:"device"`
	Trees    int       `json:"trees"`
	IssuedAt time.Time `json:"issued_at"`
}

// Payload returns the QR payload of the ticket.
func (t Ticket) Payload() Payload {
	return Payload{
		Type:     payloadType,
		ID:       t.ID.String(),
		Owner:    t.Owner,
		TotalCO2: math.Round(t.TotalCO2*100) / 100,
		Device:   t.HighestImpact,
		Trees:    t.Trees,
		IssuedAt: t.IssuedAt.UTC(),
	}
}

// ParsePayload decodes the content of a ticket QR code.
func ParsePayload(data string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return Payload{}, errors.Wrap(err, "unmarshal ticket payload")
	}
	if p.Type != payloadType {
		return Payload{}, errors.Errorf("invalid ticket payload type: %s", p.Type)
	}
	if _, err := uuid.Parse(p.ID); err != nil {
		return Payload{}, errors.Wrap(err, "parse ticket id")
	}
	return p, nil
}

// Level maps a correction letter to a recovery level. Unknown letters get Medium.
func Level(letter string) qrcode.RecoveryLevel {
	switch strings.ToUpper(letter) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// QRCode renders the ticket payload as a size x size PNG.
func (t Ticket) QRCode(size int, level qrcode.RecoveryLevel) ([]byte, error) {
	data, err := json.Marshal(t.Payload())
	if err != nil {
		return nil, errors.Wrap(err, "marshal ticket payload")
	}

	code, err := qrcode.New(string(data), level)
	if err != nil {
		return nil, errors.Wrap(err, "create qr code")
	}

	png, err := code.PNG(size)
	if err != nil {
		return nil, errors.Wrap(err, "render qr png")
	}
	return png, nil
}
