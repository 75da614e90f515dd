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

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementa TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	db querier
}

// NewTransactionRepository construye el repositorio; acepta el pool o una tx.
func NewTransactionRepository(db querier) *TransactionRepo {
	return &TransactionRepo{db: db}
}

const transactionColumns = `id, type, description, amount, category, payment_method, date,
	       document_number, created_by, created_at, updated_at`

func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	const q = `
		INSERT INTO transactions
			(id, type, description, amount, category, payment_method, date, document_number, created_by, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, q,
		t.ID, t.Type, t.Description, t.Amount, t.Category, t.PaymentMethod, t.Date,
		t.DocumentNumber, t.CreatedBy, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	q := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransaction(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by id: %w", err)
	}
	return t, nil
}

func (r *TransactionRepo) Update(ctx context.Context, t *entity.Transaction) error {
	const q = `
		UPDATE transactions
		SET type = $2, description = $3, amount = $4, category = $5, payment_method = $6,
		    date = $7, document_number = $8, updated_at = now()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, q,
		t.ID, t.Type, t.Description, t.Amount, t.Category, t.PaymentMethod,
		t.Date, t.DocumentNumber,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// List aplica los filtros presentes (año/mes/categoría/tipo) y pagina por fecha descendente.
func (r *TransactionRepo) List(ctx context.Context, f repository.TransactionFilter) ([]*entity.Transaction, error) {
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
	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.Type != "" {
		add("type = $%d", f.Type)
	}

	q := `SELECT ` + transactionColumns + ` FROM transactions`
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
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTransaction(row pgxScanner) (*entity.Transaction, error) {
	var t entity.Transaction
	err := row.Scan(
		&t.ID, &t.Type, &t.Description, &t.Amount, &t.Category, &t.PaymentMethod, &t.Date,
		&t.DocumentNumber, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
