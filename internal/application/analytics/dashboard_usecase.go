// Package analytics contiene los casos de uso del dashboard de tesorería.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/report"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen financiero de un año/mes: balance
// histórico, cifras del mes, desgloses por categoría y método de pago y
// progreso de metas.
//
// Las cifras del mes se derivan en memoria con el paquete report sobre los
// movimientos del período; el balance histórico lo agrega la DB.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	txRepo        repository.TransactionRepository
	prebRepo      repository.PrebendaRepository
	goalRepo      repository.FinancialGoalRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	txRepo repository.TransactionRepository,
	prebRepo repository.PrebendaRepository,
	goalRepo repository.FinancialGoalRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		txRepo:        txRepo,
		prebRepo:      prebRepo,
		goalRepo:      goalRepo,
	}
}

// GetSummary construye el DashboardSummaryDTO del año/mes indicado.
// Año o mes en cero se sustituyen por el período actual.
//
// Cuatro llamadas en paralelo:
//  1. GetBalanceComponents      → balance histórico
//  2. List(movimientos del mes) → cifras y desgloses del mes
//  3. List(prebendas del mes)   → total de prebendas
//  4. ListByYear(metas)         → progreso de metas
func (uc *DashboardUseCase) GetSummary(ctx context.Context, year, month int) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}

	type balanceResult struct {
		entries decimal.Decimal
		exits   decimal.Decimal
		err     error
	}
	type movsResult struct {
		movs []*entity.Transaction
		err  error
	}
	type prebResult struct {
		items []*entity.Prebenda
		err   error
	}
	type goalsResult struct {
		goals []*entity.FinancialGoal
		err   error
	}

	balanceCh := make(chan balanceResult, 1)
	movsCh := make(chan movsResult, 1)
	prebCh := make(chan prebResult, 1)
	goalsCh := make(chan goalsResult, 1)

	go func() {
		entries, exits, err := uc.analyticsRepo.GetBalanceComponents(ctx)
		balanceCh <- balanceResult{entries, exits, err}
	}()
	go func() {
		movs, err := uc.txRepo.List(ctx, repository.TransactionFilter{Year: year, Month: month})
		movsCh <- movsResult{movs, err}
	}()
	go func() {
		items, err := uc.prebRepo.List(ctx, repository.PrebendaFilter{Year: year, Month: month})
		prebCh <- prebResult{items, err}
	}()
	go func() {
		goals, err := uc.goalRepo.ListByYear(ctx, year)
		goalsCh <- goalsResult{goals, err}
	}()

	balance := <-balanceCh
	movs := <-movsCh
	preb := <-prebCh
	goals := <-goalsCh

	if balance.err != nil {
		return nil, fmt.Errorf("dashboard: balance histórico: %w", balance.err)
	}
	if movs.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos del mes: %w", movs.err)
	}
	if preb.err != nil {
		return nil, fmt.Errorf("dashboard: prebendas del mes: %w", preb.err)
	}
	if goals.err != nil {
		return nil, fmt.Errorf("dashboard: metas del año: %w", goals.err)
	}

	monthEntries := report.TotalByType(movs.movs, entity.TransactionEntry)
	monthExits := report.TotalByType(movs.movs, entity.TransactionExit)

	out := &dto.DashboardSummaryDTO{
		Year:          year,
		Month:         month,
		Balance:       balance.entries.Sub(balance.exits).Round(2),
		MonthEntries:  monthEntries.Round(2),
		MonthExits:    monthExits.Round(2),
		MonthBalance:  monthEntries.Sub(monthExits).Round(2),
		PrebendaTotal: report.PrebendaTotal(preb.items).Round(2),
		ByCategory:    toKeyTotals(report.TotalByKey(movs.movs, func(t *entity.Transaction) string { return t.Category })),
		ByMethod:      toKeyTotals(report.TotalByKey(movs.movs, func(t *entity.Transaction) string { return t.PaymentMethod })),
		Goals:         goalProgress(goals.goals, movs.movs, month),
	}
	return out, nil
}

// goalProgress calcula el progreso de cada meta contra las entradas reales
// del mes en su categoría.
func goalProgress(goals []*entity.FinancialGoal, movs []*entity.Transaction, month int) []dto.GoalProgressDTO {
	out := make([]dto.GoalProgressDTO, 0, len(goals))
	for _, g := range goals {
		actual := decimal.Zero
		for _, m := range movs {
			if m.Type == entity.TransactionEntry && m.Category == g.Field {
				actual = actual.Add(m.Amount)
			}
		}
		p := report.ComputeGoalProgress(g.GoalForMonth(month), actual)
		out = append(out, dto.GoalProgressDTO{
			Field:      g.Field,
			Goal:       p.Goal,
			Actual:     p.Actual,
			Percentage: p.Percentage.Round(2),
			Status:     p.Status,
		})
	}
	return out
}

func toKeyTotals(in []report.KeyTotal) []dto.KeyTotalDTO {
	out := make([]dto.KeyTotalDTO, 0, len(in))
	for _, kt := range in {
		out = append(out, dto.KeyTotalDTO{Key: kt.Key, Total: kt.Total.Round(2)})
	}
	return out
}
