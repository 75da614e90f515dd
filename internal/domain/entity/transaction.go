package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de tesorería.
const (
	TransactionEntry = "entrada"
	TransactionExit  = "salida"
)

// Métodos de pago aceptados en los formularios.
const (
	MethodCash     = "efectivo"
	MethodTransfer = "transferencia"
	MethodPix      = "pix"
	MethodCheck    = "cheque"
)

// Transaction representa un movimiento de tesorería (entrada o salida).
// DocumentNumber es opcional; cuando está presente debe ser único a nivel
// global (transacciones + prebendas) y pertenecer a un rango activo.
type Transaction struct {
	ID             string
	Type           string // entrada | salida
	Description    string
	Amount         decimal.Decimal
	Category       string // diezmo, ofrenda, misiones, mantenimiento, ...
	PaymentMethod  string
	Date           time.Time
	DocumentNumber string // opcional, free-form
	CreatedBy      string // user ID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
