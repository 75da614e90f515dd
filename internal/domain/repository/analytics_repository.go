package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository consultas de solo lectura para el dashboard.
// Las cifras del mes se derivan en memoria con el paquete report; el balance
// histórico se agrega en la DB para no traer toda la tabla por petición.
type AnalyticsRepository interface {
	// GetBalanceComponents devuelve la suma histórica de entradas y salidas.
	GetBalanceComponents(ctx context.Context) (entries, exits decimal.Decimal, err error)
}
