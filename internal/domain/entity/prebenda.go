package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prebenda representa un pago pastoral: prebenda (sustento) o auxilio.
// Es estructuralmente similar a una Transaction de salida pero con campos
// propios (nombre del pastor, banderas de tipo) y su propia tabla.
type Prebenda struct {
	ID             string
	PastorName     string
	Amount         decimal.Decimal
	Date           time.Time
	PaymentMethod  string
	IsPrebenda     bool   // sustento pastoral regular
	IsAuxilio      bool   // ayuda puntual
	DocumentNumber string // opcional; comparte unicidad global con Transaction
	Notes          string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
