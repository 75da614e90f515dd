package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateFinancialGoalRequest entrada para crear las metas de un campo/año.
// Monthly mapea mes ("1".."12") a monto; los montos aceptan número o string.
type CreateFinancialGoalRequest struct {
	Field   string                     `json:"field" validate:"required"`
	Year    int                        `json:"year" validate:"required,min=2000,max=2100"`
	Monthly map[string]decimal.Decimal `json:"monthly"`
}

// UpdateFinancialGoalRequest actualización de metas.
type UpdateFinancialGoalRequest struct {
	Field   *string                    `json:"field"`
	Year    *int                       `json:"year" validate:"omitempty,min=2000,max=2100"`
	Monthly map[string]decimal.Decimal `json:"monthly"`
}

// FinancialGoalResponse salida de una meta.
type FinancialGoalResponse struct {
	ID        string                     `json:"id"`
	Field     string                     `json:"field"`
	Year      int                        `json:"year"`
	Monthly   map[string]decimal.Decimal `json:"monthly"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// FinancialGoalListResponse metas de un año.
type FinancialGoalListResponse struct {
	Items []FinancialGoalResponse `json:"items"`
}
