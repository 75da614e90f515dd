package report

import "github.com/shopspring/decimal"

// Clasificación de progreso de una meta financiera.
const (
	GoalExceeded = "exceeded" // porcentaje >= 100
	GoalOnTrack  = "on-track" // 80 <= porcentaje < 100
	GoalBelow    = "below"    // porcentaje < 80
)

var (
	goalExceededAt = decimal.NewFromInt(100)
	goalOnTrackAt  = decimal.NewFromInt(80)
)

// GoalProgress es el resultado del cálculo para un (campo, año, mes).
type GoalProgress struct {
	Goal       decimal.Decimal
	Actual     decimal.Decimal
	Percentage decimal.Decimal
	Status     string
}

// ComputeGoalProgress calcula porcentaje y estado de una meta.
// Con meta cero el porcentaje se reporta como cero (nunca se divide) y el
// estado queda en "below".
func ComputeGoalProgress(goal, actual decimal.Decimal) GoalProgress {
	p := GoalProgress{Goal: goal, Actual: actual, Percentage: decimal.Zero}
	if goal.IsZero() {
		p.Status = GoalBelow
		return p
	}
	// Sin redondeo antes de clasificar: 79.999 debe quedar en "below",
	// redondear a 80.00 lo movería de estado.
	p.Percentage = actual.Div(goal).Mul(goalExceededAt)
	switch {
	case p.Percentage.GreaterThanOrEqual(goalExceededAt):
		p.Status = GoalExceeded
	case p.Percentage.GreaterThanOrEqual(goalOnTrackAt):
		p.Status = GoalOnTrack
	default:
		p.Status = GoalBelow
	}
	return p
}
