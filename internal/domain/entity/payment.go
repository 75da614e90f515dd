package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment representa un pago recibido, normalmente asociado a una inscripción.
// RegistrationID puede estar vacío (pago suelto registrado en caja).
type Payment struct {
	ID             string
	RegistrationID string
	PayerName      string
	Amount         decimal.Decimal
	PaymentMethod  string
	Date           time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
