package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRegistrationRequest entrada para crear una inscripción.
type CreateRegistrationRequest struct {
	PersonName string          `json:"person_name" validate:"required"`
	Event      string          `json:"event" validate:"required"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email" validate:"omitempty,email"`
	AmountDue  decimal.Decimal `json:"amount_due"`
}

// UpdateRegistrationRequest actualización parcial de una inscripción.
type UpdateRegistrationRequest struct {
	PersonName *string          `json:"person_name"`
	Event      *string          `json:"event"`
	Phone      *string          `json:"phone"`
	Email      *string          `json:"email"`
	AmountDue  *decimal.Decimal `json:"amount_due"`
	Status     *string          `json:"status" validate:"omitempty,oneof=pendiente pagado cancelado"`
}

// RegistrationResponse salida de una inscripción.
type RegistrationResponse struct {
	ID         string          `json:"id"`
	PersonName string          `json:"person_name"`
	Event      string          `json:"event"`
	Phone      string          `json:"phone,omitempty"`
	Email      string          `json:"email,omitempty"`
	AmountDue  decimal.Decimal `json:"amount_due"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// RegistrationListResponse lista paginada.
type RegistrationListResponse struct {
	Items []RegistrationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// CreatePaymentRequest entrada para registrar un pago.
type CreatePaymentRequest struct {
	RegistrationID string          `json:"registration_id"`
	PayerName      string          `json:"payer_name" validate:"required"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"payment_method" validate:"required"`
	Date           time.Time       `json:"date"`
}

// UpdatePaymentRequest actualización parcial de un pago.
type UpdatePaymentRequest struct {
	PayerName     *string          `json:"payer_name"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"payment_method"`
	Date          *time.Time       `json:"date"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID             string          `json:"id"`
	RegistrationID string          `json:"registration_id,omitempty"`
	PayerName      string          `json:"payer_name"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"payment_method"`
	Date           time.Time       `json:"date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PaymentListResponse lista paginada.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
