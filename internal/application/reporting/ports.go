// Package reporting genera el informe mensual de tesorería en PDF.
package reporting

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/report"
)

// MonthlyReportData es todo lo que el generador necesita para armar el PDF.
// El caso de uso lo construye; el generador solo diagrama.
type MonthlyReportData struct {
	ChurchName string
	Year       int
	Month      int

	Entries decimal.Decimal
	Exits   decimal.Decimal
	Balance decimal.Decimal

	ByCategory []report.KeyTotal
	ByMethod   []report.KeyTotal

	Movements     []*entity.Transaction
	Prebendas     []*entity.Prebenda
	PrebendaTotal decimal.Decimal

	Goals []GoalLine
}

// GoalLine es una meta del mes con su progreso, para la sección de metas.
type GoalLine struct {
	Field      string
	Goal       decimal.Decimal
	Actual     decimal.Decimal
	Percentage decimal.Decimal
	Status     string
}

// ReportPDFGenerator es el puerto de generación del PDF (adaptador Maroto).
type ReportPDFGenerator interface {
	GenerateMonthlyReport(ctx context.Context, data *MonthlyReportData) ([]byte, error)
}
