package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una inscripción.
const (
	RegistrationPending   = "pendiente"
	RegistrationPaid      = "pagado"
	RegistrationCancelled = "cancelado"
)

// Registration representa la inscripción de una persona a un evento
// (congreso, retiro, campamento) con un monto a pagar.
type Registration struct {
	ID         string
	PersonName string
	Event      string
	Phone      string
	Email      string
	AmountDue  decimal.Decimal
	Status     string // pendiente | pagado | cancelado
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
