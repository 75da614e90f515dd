package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialGoal representa las metas mensuales de un campo financiero
// (ej. "diezmo", "ofrenda", "misiones") para un año.
// Monthly se persiste como blob JSON {"1": "1500.00", ...} en una sola
// columna; el repositorio lo parsea en la frontera de acceso.
type FinancialGoal struct {
	ID        string
	Field     string // categoría sobre la que se mide la meta
	Year      int
	Monthly   map[int]decimal.Decimal // mes (1..12) -> monto meta
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GoalForMonth devuelve la meta del mes o cero si no está configurada.
func (g *FinancialGoal) GoalForMonth(month int) decimal.Decimal {
	if g == nil || g.Monthly == nil {
		return decimal.Zero
	}
	if v, ok := g.Monthly[month]; ok {
		return v
	}
	return decimal.Zero
}
