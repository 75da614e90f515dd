package repository

import (
	"context"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
)

// TransactionFilter filtros de listado de movimientos. Cero = sin filtro.
type TransactionFilter struct {
	Year     int
	Month    int // 1..12; requiere Year
	Category string
	Type     string // entrada | salida
	Limit    int
	Offset   int
}

// TransactionRepository define el puerto de persistencia para Transaction (DIP).
type TransactionRepository interface {
	Create(ctx context.Context, t *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	Update(ctx context.Context, t *entity.Transaction) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f TransactionFilter) ([]*entity.Transaction, error)
}
