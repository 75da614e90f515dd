package repository

import (
	"context"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
)

// PrebendaFilter filtros de listado de prebendas/auxilios. Cero = sin filtro.
type PrebendaFilter struct {
	Year       int
	Month      int
	PastorName string
	Limit      int
	Offset     int
}

// PrebendaRepository define el puerto de persistencia para Prebenda.
type PrebendaRepository interface {
	Create(ctx context.Context, p *entity.Prebenda) error
	GetByID(ctx context.Context, id string) (*entity.Prebenda, error)
	Update(ctx context.Context, p *entity.Prebenda) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f PrebendaFilter) ([]*entity.Prebenda, error)
}
