package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

var _ repository.PrebendaRepository = (*PrebendaRepo)(nil)

// PrebendaRepo implementa PrebendaRepository sobre PostgreSQL.
type PrebendaRepo struct {
	db querier
}

// NewPrebendaRepository construye el repositorio; acepta el pool o una tx.
func NewPrebendaRepository(db querier) *PrebendaRepo {
	return &PrebendaRepo{db: db}
}

const prebendaColumns = `id, pastor_name, amount, date, payment_method, is_prebenda, is_auxilio,
	       document_number, notes, created_by, created_at, updated_at`

func (r *PrebendaRepo) Create(ctx context.Context, p *entity.Prebenda) error {
	const q = `
		INSERT INTO prebendas
			(id, pastor_name, amount, date, payment_method, is_prebenda, is_auxilio, document_number, notes, created_by, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, q,
		p.ID, p.PastorName, p.Amount, p.Date, p.PaymentMethod, p.IsPrebenda, p.IsAuxilio,
		p.DocumentNumber, p.Notes, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert prebenda: %w", err)
	}
	return nil
}

func (r *PrebendaRepo) GetByID(ctx context.Context, id string) (*entity.Prebenda, error) {
	q := `SELECT ` + prebendaColumns + ` FROM prebendas WHERE id = $1`
	p, err := scanPrebenda(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get prebenda by id: %w", err)
	}
	return p, nil
}

func (r *PrebendaRepo) Update(ctx context.Context, p *entity.Prebenda) error {
	const q = `
		UPDATE prebendas
		SET pastor_name = $2, amount = $3, date = $4, payment_method = $5,
		    is_prebenda = $6, is_auxilio = $7, document_number = $8, notes = $9, updated_at = now()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, q,
		p.ID, p.PastorName, p.Amount, p.Date, p.PaymentMethod,
		p.IsPrebenda, p.IsAuxilio, p.DocumentNumber, p.Notes,
	)
	if err != nil {
		return fmt.Errorf("update prebenda: %w", err)
	}
	return nil
}

func (r *PrebendaRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM prebendas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prebenda: %w", err)
	}
	return nil
}

func (r *PrebendaRepo) List(ctx context.Context, f repository.PrebendaFilter) ([]*entity.Prebenda, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Year > 0 {
		add("EXTRACT(YEAR FROM date) = $%d", f.Year)
	}
	if f.Month > 0 {
		add("EXTRACT(MONTH FROM date) = $%d", f.Month)
	}
	if f.PastorName != "" {
		add("pastor_name = $%d", f.PastorName)
	}

	q := `SELECT ` + prebendaColumns + ` FROM prebendas`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY date DESC, created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list prebendas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Prebenda
	for rows.Next() {
		p, err := scanPrebenda(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prebenda: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPrebenda(row pgxScanner) (*entity.Prebenda, error) {
	var p entity.Prebenda
	err := row.Scan(
		&p.ID, &p.PastorName, &p.Amount, &p.Date, &p.PaymentMethod, &p.IsPrebenda, &p.IsAuxilio,
		&p.DocumentNumber, &p.Notes, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
