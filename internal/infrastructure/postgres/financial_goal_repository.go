package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tesoreria-api/internal/domain"
	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

var _ repository.FinancialGoalRepository = (*FinancialGoalRepo)(nil)

// FinancialGoalRepo implementa FinancialGoalRepository sobre PostgreSQL.
// Las metas mensuales viven en una sola columna de texto como JSON
// {"1": "1500.00", ...}; el parse ocurre solo en esta frontera.
type FinancialGoalRepo struct {
	db querier
}

// NewFinancialGoalRepository construye el repositorio.
func NewFinancialGoalRepository(db querier) *FinancialGoalRepo {
	return &FinancialGoalRepo{db: db}
}

const goalColumns = `id, field, year, monthly, created_at, updated_at`

func (r *FinancialGoalRepo) Create(ctx context.Context, g *entity.FinancialGoal) error {
	monthly, err := marshalMonthly(g.Monthly)
	if err != nil {
		return err
	}
	const q = `
		INSERT INTO financial_goals (id, field, year, monthly, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.db.Exec(ctx, q, g.ID, g.Field, g.Year, monthly, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate // ya existe meta para (field, year)
		}
		return fmt.Errorf("insert financial_goal: %w", err)
	}
	return nil
}

func (r *FinancialGoalRepo) GetByID(ctx context.Context, id string) (*entity.FinancialGoal, error) {
	q := `SELECT ` + goalColumns + ` FROM financial_goals WHERE id = $1`
	g, err := scanGoal(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get financial_goal by id: %w", err)
	}
	return g, nil
}

func (r *FinancialGoalRepo) GetByFieldAndYear(ctx context.Context, field string, year int) (*entity.FinancialGoal, error) {
	q := `SELECT ` + goalColumns + ` FROM financial_goals WHERE field = $1 AND year = $2`
	g, err := scanGoal(r.db.QueryRow(ctx, q, field, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get financial_goal by field/year: %w", err)
	}
	return g, nil
}

func (r *FinancialGoalRepo) ListByYear(ctx context.Context, year int) ([]*entity.FinancialGoal, error) {
	q := `SELECT ` + goalColumns + ` FROM financial_goals WHERE year = $1 ORDER BY field`
	rows, err := r.db.Query(ctx, q, year)
	if err != nil {
		return nil, fmt.Errorf("list financial_goals: %w", err)
	}
	defer rows.Close()

	var list []*entity.FinancialGoal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan financial_goal: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

func (r *FinancialGoalRepo) Update(ctx context.Context, g *entity.FinancialGoal) error {
	monthly, err := marshalMonthly(g.Monthly)
	if err != nil {
		return err
	}
	const q = `
		UPDATE financial_goals
		SET field = $2, year = $3, monthly = $4, updated_at = now()
		WHERE id = $1`
	_, err = r.db.Exec(ctx, q, g.ID, g.Field, g.Year, monthly)
	if err != nil {
		return fmt.Errorf("update financial_goal: %w", err)
	}
	return nil
}

func (r *FinancialGoalRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM financial_goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete financial_goal: %w", err)
	}
	return nil
}

// ── (de)serialización del blob mensual ────────────────────────────────────────

func marshalMonthly(m map[int]decimal.Decimal) (string, error) {
	out := make(map[string]string, len(m))
	for month, amount := range m {
		out[strconv.Itoa(month)] = amount.String()
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("marshal monthly goals: %w", err)
	}
	return string(b), nil
}

func unmarshalMonthly(s string) (map[int]decimal.Decimal, error) {
	if s == "" {
		return map[int]decimal.Decimal{}, nil
	}
	var raw map[string]string
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("unmarshal monthly goals: %w", err)
	}
	out := make(map[int]decimal.Decimal, len(raw))
	for k, v := range raw {
		month, err := strconv.Atoi(k)
		if err != nil || month < 1 || month > 12 {
			return nil, fmt.Errorf("mes inválido en metas: %q", k)
		}
		amount, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("monto inválido en metas (%q): %w", v, err)
		}
		out[month] = amount
	}
	return out, nil
}

func scanGoal(row pgxScanner) (*entity.FinancialGoal, error) {
	var (
		g       entity.FinancialGoal
		monthly string
	)
	err := row.Scan(&g.ID, &g.Field, &g.Year, &monthly, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if g.Monthly, err = unmarshalMonthly(monthly); err != nil {
		return nil, err
	}
	return &g, nil
}
