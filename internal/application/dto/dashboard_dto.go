package dto

import "github.com/shopspring/decimal"

// KeyTotalDTO par clave/total (categoría, método de pago, ...).
type KeyTotalDTO struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
}

// GoalProgressDTO progreso de una meta para el período consultado.
type GoalProgressDTO struct {
	Field      string          `json:"field"`
	Goal       decimal.Decimal `json:"goal"`
	Actual     decimal.Decimal `json:"actual"`
	Percentage decimal.Decimal `json:"percentage"`
	Status     string          `json:"status"` // exceeded | on-track | below
}

// DashboardSummaryDTO resumen del dashboard para un año/mes.
type DashboardSummaryDTO struct {
	Year          int               `json:"year"`
	Month         int               `json:"month"`
	Balance       decimal.Decimal   `json:"balance"` // histórico completo
	MonthEntries  decimal.Decimal   `json:"month_entries"`
	MonthExits    decimal.Decimal   `json:"month_exits"`
	MonthBalance  decimal.Decimal   `json:"month_balance"`
	PrebendaTotal decimal.Decimal   `json:"prebenda_total"`
	ByCategory    []KeyTotalDTO     `json:"by_category"`
	ByMethod      []KeyTotalDTO     `json:"by_method"`
	Goals         []GoalProgressDTO `json:"goals"`
}
