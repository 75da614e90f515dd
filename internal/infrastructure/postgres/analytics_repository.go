package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	db querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(db querier) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// GetBalanceComponents agrega en la DB la suma histórica de entradas y
// salidas (la única cifra que abarca toda la tabla; el resto del dashboard
// se deriva en memoria sobre los movimientos del período).
func (r *AnalyticsRepo) GetBalanceComponents(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	const q = `
		SELECT
		    COALESCE(SUM(amount) FILTER (WHERE type = $1), 0) AS entries,
		    COALESCE(SUM(amount) FILTER (WHERE type = $2), 0) AS exits
		FROM transactions`
	var entries, exits decimal.Decimal
	err := r.db.QueryRow(ctx, q, entity.TransactionEntry, entity.TransactionExit).
		Scan(&entries, &exits)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("analytics.GetBalanceComponents: %w", err)
	}
	return entries, exits, nil
}
