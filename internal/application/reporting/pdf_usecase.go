package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/report"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
	"github.com/jhoicas/tesoreria-api/pkg/config"
)

// PDFUseCase arma el informe mensual: movimientos y prebendas del período,
// totales agregados en memoria y generación vía el puerto PDF.
type PDFUseCase struct {
	txRepo    repository.TransactionRepository
	prebRepo  repository.PrebendaRepository
	goalRepo  repository.FinancialGoalRepository
	generator ReportPDFGenerator
	cfg       config.ReportConfig
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	txRepo repository.TransactionRepository,
	prebRepo repository.PrebendaRepository,
	goalRepo repository.FinancialGoalRepository,
	generator ReportPDFGenerator,
	cfg config.ReportConfig,
) *PDFUseCase {
	return &PDFUseCase{txRepo: txRepo, prebRepo: prebRepo, goalRepo: goalRepo, generator: generator, cfg: cfg}
}

// MonthlyReport genera el PDF del mes indicado.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrInvalidInput    si el período es inválido.
func (uc *PDFUseCase) MonthlyReport(ctx context.Context, year, month int) (pdfBytes []byte, filename string, err error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return nil, "", domain.ErrInvalidInput
	}

	movs, err := uc.txRepo.List(ctx, repository.TransactionFilter{Year: year, Month: month})
	if err != nil {
		return nil, "", fmt.Errorf("reporte: movimientos del mes: %w", err)
	}
	prebs, err := uc.prebRepo.List(ctx, repository.PrebendaFilter{Year: year, Month: month})
	if err != nil {
		return nil, "", fmt.Errorf("reporte: prebendas del mes: %w", err)
	}
	goals, err := uc.goalRepo.ListByYear(ctx, year)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: metas del año: %w", err)
	}

	data := &MonthlyReportData{
		ChurchName:    uc.cfg.ChurchName,
		Year:          year,
		Month:         month,
		Entries:       report.TotalByType(movs, entity.TransactionEntry),
		Exits:         report.TotalByType(movs, entity.TransactionExit),
		Balance:       report.Balance(movs),
		ByCategory:    report.TotalByKey(movs, func(t *entity.Transaction) string { return t.Category }),
		ByMethod:      report.TotalByKey(movs, func(t *entity.Transaction) string { return t.PaymentMethod }),
		Movements:     movs,
		Prebendas:     prebs,
		PrebendaTotal: report.PrebendaTotal(prebs),
		Goals:         goalLines(goals, movs, month),
	}

	pdfBytes, err = uc.generator.GenerateMonthlyReport(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("informe_tesoreria_%04d_%02d.pdf", year, month)
	return pdfBytes, filename, nil
}

// goalLines calcula el progreso de cada meta contra las entradas reales
// del mes en su categoría.
func goalLines(goals []*entity.FinancialGoal, movs []*entity.Transaction, month int) []GoalLine {
	out := make([]GoalLine, 0, len(goals))
	for _, g := range goals {
		actual := decimal.Zero
		for _, m := range movs {
			if m.Type == entity.TransactionEntry && m.Category == g.Field {
				actual = actual.Add(m.Amount)
			}
		}
		p := report.ComputeGoalProgress(g.GoalForMonth(month), actual)
		out = append(out, GoalLine{
			Field:      g.Field,
			Goal:       p.Goal,
			Actual:     p.Actual,
			Percentage: p.Percentage.Round(2),
			Status:     p.Status,
		})
	}
	return out
}
