package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada para crear un movimiento.
// Amount acepta número o string JSON (decimal parsea ambos): esta es la única
// frontera donde se parsea un monto.
type CreateTransactionRequest struct {
	Type           string          `json:"type" validate:"required,oneof=entrada salida"`
	Description    string          `json:"description" validate:"required,min=1,max=200"`
	Amount         decimal.Decimal `json:"amount"`
	Category       string          `json:"category" validate:"required"`
	PaymentMethod  string          `json:"payment_method" validate:"required"`
	Date           time.Time       `json:"date"`
	DocumentNumber string          `json:"document_number"`
}

// UpdateTransactionRequest actualización parcial de un movimiento.
// Si DocumentNumber cambia, el gate de numeración se vuelve a aplicar.
type UpdateTransactionRequest struct {
	Type           *string          `json:"type" validate:"omitempty,oneof=entrada salida"`
	Description    *string          `json:"description"`
	Amount         *decimal.Decimal `json:"amount"`
	Category       *string          `json:"category"`
	PaymentMethod  *string          `json:"payment_method"`
	Date           *time.Time       `json:"date"`
	DocumentNumber *string          `json:"document_number"`
}

// TransactionResponse salida de un movimiento.
type TransactionResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Category       string          `json:"category"`
	PaymentMethod  string          `json:"payment_method"`
	Date           time.Time       `json:"date"`
	DocumentNumber string          `json:"document_number,omitempty"`
	CreatedBy      string          `json:"created_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TransactionListResponse lista paginada de movimientos.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
