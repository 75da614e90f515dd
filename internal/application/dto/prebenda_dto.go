package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePrebendaRequest entrada para registrar una prebenda o auxilio.
type CreatePrebendaRequest struct {
	PastorName     string          `json:"pastor_name" validate:"required"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	PaymentMethod  string          `json:"payment_method" validate:"required"`
	IsPrebenda     bool            `json:"is_prebenda"`
	IsAuxilio      bool            `json:"is_auxilio"`
	DocumentNumber string          `json:"document_number"`
	Notes          string          `json:"notes"`
}

// UpdatePrebendaRequest actualización parcial.
type UpdatePrebendaRequest struct {
	PastorName     *string          `json:"pastor_name"`
	Amount         *decimal.Decimal `json:"amount"`
	Date           *time.Time       `json:"date"`
	PaymentMethod  *string          `json:"payment_method"`
	IsPrebenda     *bool            `json:"is_prebenda"`
	IsAuxilio      *bool            `json:"is_auxilio"`
	DocumentNumber *string          `json:"document_number"`
	Notes          *string          `json:"notes"`
}

// PrebendaResponse salida de una prebenda/auxilio.
type PrebendaResponse struct {
	ID             string          `json:"id"`
	PastorName     string          `json:"pastor_name"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	PaymentMethod  string          `json:"payment_method"`
	IsPrebenda     bool            `json:"is_prebenda"`
	IsAuxilio      bool            `json:"is_auxilio"`
	DocumentNumber string          `json:"document_number,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CreatedBy      string          `json:"created_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PrebendaListResponse lista paginada.
type PrebendaListResponse struct {
	Items []PrebendaResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
