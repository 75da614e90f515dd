package repository

import (
	"context"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
)

// PastorRepository define el puerto de persistencia para Pastor.
type PastorRepository interface {
	Create(ctx context.Context, p *entity.Pastor) error
	GetByID(ctx context.Context, id string) (*entity.Pastor, error)
	Update(ctx context.Context, p *entity.Pastor) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Pastor, error)
}
