package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementa PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	db querier
}

// NewPaymentRepository construye el repositorio.
func NewPaymentRepository(db querier) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	const q = `
		INSERT INTO payments
			(id, registration_id, payer_name, amount, payment_method, date, created_at, updated_at)
		VALUES
			($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, q,
		p.ID, p.RegistrationID, p.PayerName, p.Amount, p.PaymentMethod, p.Date,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	q := `SELECT ` + paymentSelect + ` FROM payments WHERE id = $1`
	p, err := scanPayment(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment by id: %w", err)
	}
	return p, nil
}

func (r *PaymentRepo) Update(ctx context.Context, p *entity.Payment) error {
	const q = `
		UPDATE payments
		SET registration_id = NULLIF($2, ''), payer_name = $3, amount = $4,
		    payment_method = $5, date = $6, updated_at = now()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, q,
		p.ID, p.RegistrationID, p.PayerName, p.Amount, p.PaymentMethod, p.Date,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

func (r *PaymentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

func (r *PaymentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Payment, error) {
	q := `SELECT ` + paymentSelect + ` FROM payments ORDER BY date DESC LIMIT $1 OFFSET $2`
	return r.queryPayments(ctx, q, limit, offset)
}

func (r *PaymentRepo) ListByRegistration(ctx context.Context, registrationID string) ([]*entity.Payment, error) {
	q := `SELECT ` + paymentSelect + ` FROM payments WHERE registration_id = $1 ORDER BY date`
	return r.queryPayments(ctx, q, registrationID)
}

// registration_id es NULLable en la tabla; en dominio es string vacío.
const paymentSelect = `id, COALESCE(registration_id, ''), payer_name, amount, payment_method, date, created_at, updated_at`

func (r *PaymentRepo) queryPayments(ctx context.Context, q string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPayment(row pgxScanner) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID, &p.RegistrationID, &p.PayerName, &p.Amount, &p.PaymentMethod, &p.Date,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
