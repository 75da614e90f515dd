package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tesoreria-api/internal/application/dto"
	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

// FinancialGoalUseCase casos de uso CRUD para metas financieras anuales.
type FinancialGoalUseCase struct {
	repo repository.FinancialGoalRepository
}

// NewFinancialGoalUseCase construye el caso de uso.
func NewFinancialGoalUseCase(repo repository.FinancialGoalRepository) *FinancialGoalUseCase {
	return &FinancialGoalUseCase{repo: repo}
}

// Create crea las metas de un campo/año. Un campo tiene a lo sumo una meta
// por año; el segundo intento devuelve conflicto.
func (uc *FinancialGoalUseCase) Create(ctx context.Context, in dto.CreateFinancialGoalRequest) (*dto.FinancialGoalResponse, error) {
	if in.Field == "" || in.Year < 2000 || in.Year > 2100 {
		return nil, domain.ErrInvalidInput
	}
	monthly, err := parseMonthly(in.Monthly)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByFieldAndYear(ctx, in.Field, in.Year)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	g := &entity.FinancialGoal{
		ID:        uuid.New().String(),
		Field:     in.Field,
		Year:      in.Year,
		Monthly:   monthly,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return toFinancialGoalResponse(g), nil
}

// GetByID obtiene una meta por ID.
func (uc *FinancialGoalUseCase) GetByID(ctx context.Context, id string) (*dto.FinancialGoalResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	return toFinancialGoalResponse(g), nil
}

// Update actualiza una meta. Monthly reemplaza el mapa completo cuando viene.
func (uc *FinancialGoalUseCase) Update(ctx context.Context, id string, in dto.UpdateFinancialGoalRequest) (*dto.FinancialGoalResponse, error) {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	if in.Field != nil {
		if *in.Field == "" {
			return nil, domain.ErrInvalidInput
		}
		g.Field = *in.Field
	}
	if in.Year != nil {
		if *in.Year < 2000 || *in.Year > 2100 {
			return nil, domain.ErrInvalidInput
		}
		g.Year = *in.Year
	}
	if in.Monthly != nil {
		monthly, err := parseMonthly(in.Monthly)
		if err != nil {
			return nil, err
		}
		g.Monthly = monthly
	}
	if in.Field != nil || in.Year != nil {
		other, err := uc.repo.GetByFieldAndYear(ctx, g.Field, g.Year)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != g.ID {
			return nil, domain.ErrConflict
		}
	}
	g.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return toFinancialGoalResponse(g), nil
}

// Delete elimina una meta.
func (uc *FinancialGoalUseCase) Delete(ctx context.Context, id string) error {
	g, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// ListByYear devuelve las metas de todos los campos de un año.
func (uc *FinancialGoalUseCase) ListByYear(ctx context.Context, year int) (*dto.FinancialGoalListResponse, error) {
	list, err := uc.repo.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FinancialGoalResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toFinancialGoalResponse(g))
	}
	return &dto.FinancialGoalListResponse{Items: items}, nil
}

// parseMonthly valida y convierte las llaves "1".."12" del DTO.
func parseMonthly(in map[string]decimal.Decimal) (map[int]decimal.Decimal, error) {
	out := make(map[int]decimal.Decimal, len(in))
	for k, v := range in {
		m, err := strconv.Atoi(k)
		if err != nil || m < 1 || m > 12 {
			return nil, domain.ErrInvalidInput
		}
		if v.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		out[m] = v
	}
	return out, nil
}

func toFinancialGoalResponse(g *entity.FinancialGoal) *dto.FinancialGoalResponse {
	if g == nil {
		return nil
	}
	monthly := make(map[string]decimal.Decimal, len(g.Monthly))
	for m, v := range g.Monthly {
		monthly[strconv.Itoa(m)] = v
	}
	return &dto.FinancialGoalResponse{
		ID:        g.ID,
		Field:     g.Field,
		Year:      g.Year,
		Monthly:   monthly,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
