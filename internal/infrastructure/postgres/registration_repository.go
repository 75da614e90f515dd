package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/tesoreria-api/internal/domain/repository"
)

var _ repository.RegistrationRepository = (*RegistrationRepo)(nil)

// RegistrationRepo implementa RegistrationRepository sobre PostgreSQL.
type RegistrationRepo struct {
	db querier
}

// NewRegistrationRepository construye el repositorio.
func NewRegistrationRepository(db querier) *RegistrationRepo {
	return &RegistrationRepo{db: db}
}

const registrationColumns = `id, person_name, event, phone, email, amount_due, status, created_at, updated_at`

func (r *RegistrationRepo) Create(ctx context.Context, reg *entity.Registration) error {
	const q = `
		INSERT INTO registrations
			(id, person_name, event, phone, email, amount_due, status, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, q,
		reg.ID, reg.PersonName, reg.Event, reg.Phone, reg.Email, reg.AmountDue, reg.Status,
		reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepo) GetByID(ctx context.Context, id string) (*entity.Registration, error) {
	q := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	reg, err := scanRegistration(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get registration by id: %w", err)
	}
	return reg, nil
}

func (r *RegistrationRepo) Update(ctx context.Context, reg *entity.Registration) error {
	const q = `
		UPDATE registrations
		SET person_name = $2, event = $3, phone = $4, email = $5, amount_due = $6, status = $7, updated_at = now()
		WHERE id = $1`
	_, err := r.db.Exec(ctx, q,
		reg.ID, reg.PersonName, reg.Event, reg.Phone, reg.Email, reg.AmountDue, reg.Status,
	)
	if err != nil {
		return fmt.Errorf("update registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Registration, error) {
	q := `SELECT ` + registrationColumns + ` FROM registrations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		list = append(list, reg)
	}
	return list, rows.Err()
}

func scanRegistration(row pgxScanner) (*entity.Registration, error) {
	var reg entity.Registration
	err := row.Scan(
		&reg.ID, &reg.PersonName, &reg.Event, &reg.Phone, &reg.Email,
		&reg.AmountDue, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}
