package repository

import (
	"context"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
)

// FinancialGoalRepository define el puerto de persistencia para FinancialGoal.
type FinancialGoalRepository interface {
	Create(ctx context.Context, g *entity.FinancialGoal) error
	GetByID(ctx context.Context, id string) (*entity.FinancialGoal, error)
	GetByFieldAndYear(ctx context.Context, field string, year int) (*entity.FinancialGoal, error)
	ListByYear(ctx context.Context, year int) ([]*entity.FinancialGoal, error)
	Update(ctx context.Context, g *entity.FinancialGoal) error
	Delete(ctx context.Context, id string) error
}
